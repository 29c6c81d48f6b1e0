package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const labelFontSize = 12.0

// ggSurface draws onto an in-memory image through a gg context.
type ggSurface struct {
	dc *gg.Context
	bg color.Color
}

func newGGSurface(width, height int) (*ggSurface, error) {
	dc := gg.NewContext(width, height)
	face, err := loadLabelFace()
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	return &ggSurface{dc: dc, bg: color.White}, nil
}

func loadLabelFace() (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (s *ggSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *ggSurface) Clear() {
	s.dc.SetColor(s.bg)
	s.dc.Clear()
}

func (s *ggSurface) setStroke(st Stroke) {
	s.dc.SetRGBA(
		float64(st.Color.R)/255,
		float64(st.Color.G)/255,
		float64(st.Color.B)/255,
		st.Opacity,
	)
	s.dc.SetLineWidth(st.Width)
}

func (s *ggSurface) StrokePolyline(pts []Pixel, st Stroke) {
	if len(pts) < 2 {
		return
	}
	s.setStroke(st)
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.Stroke()
}

func (s *ggSurface) FillCircle(center Pixel, radius float64, fill color.RGBA, outline Stroke) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.SetColor(fill)
	s.dc.FillPreserve()
	s.setStroke(outline)
	s.dc.Stroke()
}

func (s *ggSurface) Label(text string, at Pixel, align Align, c color.RGBA) {
	ax := 0.0
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, at.X, at.Y, ax, 0.5)
}

func (s *ggSurface) SavePNG(filename string) error {
	return s.dc.SavePNG(filename)
}
