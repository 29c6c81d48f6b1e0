package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 36

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f59e0b"))
	formulaStyle = lipgloss.NewStyle().Italic(true)
	panelStyle   = lipgloss.NewStyle().
			Width(panelWidth-1).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#374151"))
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
)

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	cols, rows := m.canvasCells()
	surface := newCellSurface(cols, rows)
	m.renderer.Draw(surface, m.state)

	body := lipgloss.JoinHorizontal(lipgloss.Top, renderCells(surface), m.panelView(rows))

	var result strings.Builder
	result.WriteString(body)
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderCells turns the cell grid into styled lines, styling runs of cells
// that share a colour together.
func renderCells(s *cellSurface) string {
	lines := make([]string, s.rows)
	for y, row := range s.cells {
		var line strings.Builder
		for x := 0; x < len(row); {
			c := row[x]
			var run strings.Builder
			for x < len(row) && row[x].color == c.color && row[x].faint == c.faint && (row[x].ch == ' ') == (c.ch == ' ') {
				run.WriteRune(row[x].ch)
				x++
			}
			if c.ch == ' ' {
				line.WriteString(run.String())
				continue
			}
			line.WriteString(lipgloss.NewStyle().Foreground(hexColor(c.color)).Faint(c.faint).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (m model) panelView(rows int) string {
	info := familyInfo[m.state.Active]

	var b strings.Builder
	b.WriteString(titleStyle.Render(info.name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(info.description))
	b.WriteString("\n\n")
	if f := formula(m.state); f != "" {
		b.WriteString(formulaStyle.Render(f))
		b.WriteString("\n\n")
	}

	for i, f := range fieldsFor(m.state) {
		line := fmt.Sprintf("%-14s %s", f.label, f.value)
		if i == m.focus {
			b.WriteString(focusStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.state.Active == FamilyBezier {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("drag points, double-click to add,\nright-click to remove"))
		if m.renderer.ShowIntermediate {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("levels at t = %.2f", m.renderer.IntermediateT)))
		}
	}

	return panelStyle.MaxHeight(max(rows, 0)).Render(b.String())
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeDragging:
		return "DRAG"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusLine() string {
	left := fmt.Sprintf(" %s | %s | 1-5 family  tab field  +/- adjust  ? help ", m.modeString(), m.state.Active)
	status := statusStyle.Width(max(m.width, 0)).Render(left)
	switch {
	case m.errorMessage != "":
		status = errorStyle.Render(" " + m.errorMessage)
	case m.successMessage != "":
		status = okStyle.Render(" " + m.successMessage)
	}
	return status
}

func (m model) helpView() string {
	helpLines := []string{
		"curvelab Help",
		"=============",
		"",
		"Curves:",
		"-------",
		"  1                Polynomial",
		"  2                Bézier",
		"  3                Parametric",
		"  4                Trigonometric",
		"  5                Exponential",
		"",
		"Parameters:",
		"-----------",
		"  tab/j/↓          Next parameter",
		"  shift+tab/k/↑    Previous parameter",
		"  +/l/→            Increase focused parameter",
		"  -/h/←            Decrease focused parameter",
		"  Shift+h/l        Adjust 10x faster",
		"",
		"Bézier editing (mouse):",
		"-----------------------",
		"  drag             Move a control point",
		"  double-click     Insert a point on the nearest control segment",
		"  right-click      Remove a point (at least two stay)",
		"  i                Toggle De Casteljau levels",
		"  [ / ]            Move the levels' t",
		"",
		"Other:",
		"------",
		"  u / ctrl+r       Undo / redo",
		"  s                Export PNG",
		"  y                Copy formula and parameters",
		"  ?                Toggle this help",
		"  q / ctrl+c       Quit",
	}
	return strings.Join(helpLines, "\n")
}
