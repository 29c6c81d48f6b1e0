package main

import (
	"fmt"
	"log"
)

// exportPNG renders the current state at the configured export size and
// writes it to filename.
func (m *model) exportPNG(filename string) error {
	width, height := m.config.ExportWidth, m.config.ExportHeight
	tr := newTransform(m.renderer.Viewport, float64(width), float64(height))
	if !tr.Valid() {
		return fmt.Errorf("export size %dx%d too small for padding %.0f", width, height, tr.Padding)
	}

	surface, err := newGGSurface(width, height)
	if err != nil {
		return err
	}
	m.renderer.Draw(surface, m.state)

	if err := surface.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	log.Printf("exported %s curve to %s", m.state.Active, filename)
	return nil
}
