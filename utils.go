package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// parameterSummary lists the active family's formula and fields, one per
// line.
func parameterSummary(s CurveState) string {
	var b strings.Builder
	b.WriteString(formula(s))
	for _, f := range fieldsFor(s) {
		fmt.Fprintf(&b, "\n%s = %s", f.label, f.value)
	}
	return b.String()
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	return nil
}

// canvasCells returns the terminal cells left for the canvas.
func (m *model) canvasCells() (int, int) {
	cols := m.width - panelWidth
	rows := m.height - 1
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

func (m *model) canvasTransform() Transform {
	cols, rows := m.canvasCells()
	return newTransform(m.renderer.Viewport, float64(cols)*cellWidth, float64(rows)*cellHeight)
}
