package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "curvelab")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	mode := ModeNormal
	if config.ShowHelp {
		mode = ModeHelp
	}
	return model{
		mode:        mode,
		state:       newCurveState(config),
		interaction: newInteraction(),
		pointer:     newPointerAdapter(),
		renderer:    newRenderer(),
		config:      config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeHelp {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.mode == ModeHelp {
		switch key {
		case "esc", "q", "?":
			m.mode = ModeNormal
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
	case "esc":
		if _, ok := m.interaction.Dragging(); ok {
			m.interaction.Reset()
			m.recordAction(ActionDragPoint, m.dragStart, m.state)
		}
		m.mode = ModeNormal
	case "1", "2", "3", "4", "5":
		m.selectFamily(Family(key[0] - '1'))
		log.Printf("switched to %s", m.state.Active)
	case "u":
		m.undo()
	case "ctrl+r":
		m.redo()
	case "s":
		filename, err := m.config.GetSavePath(fmt.Sprintf("curve-%s-%d.png", m.state.Active, time.Now().Unix()))
		if err == nil {
			err = m.exportPNG(filename)
		}
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Saved " + filename
		}
	case "y":
		if err := copyToClipboard(parameterSummary(m.state)); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Copied parameters"
		}
	case "i":
		m.renderer.ShowIntermediate = !m.renderer.ShowIntermediate
	case "[":
		m.renderer.IntermediateT = math.Max(0, m.renderer.IntermediateT-0.05)
	case "]":
		m.renderer.IntermediateT = math.Min(1, m.renderer.IntermediateT+0.05)
	default:
		m.handleNavigation(key)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	cols, rows := m.canvasCells()
	_, wasDragging := m.interaction.Dragging()
	ev, ok := m.pointer.translate(msg, cols, rows, wasDragging)
	if !ok {
		return
	}

	if !wasDragging {
		m.dragStart = m.state
	}
	before := m.state
	res := m.interaction.Handle(ev, m.state, m.canvasTransform())
	if res.Update != nil {
		m.state = m.state.Apply(*res.Update)
		m.clampFocus()
	}

	_, dragging := m.interaction.Dragging()
	switch {
	case wasDragging && !dragging:
		m.recordAction(ActionDragPoint, m.dragStart, m.state)
	case !wasDragging && !dragging:
		m.recordAction(ActionUpdateParameters, before, m.state)
	}

	m.mode = ModeNormal
	if dragging {
		m.mode = ModeDragging
	}
}
