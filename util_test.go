package main

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

type strokeOp struct {
	pts []Pixel
	st  Stroke
}

// recordingSurface remembers every call so tests can inspect what the
// renderer drew.
type recordingSurface struct {
	width, height float64
	clears        int
	strokes       []strokeOp
	circles       []Pixel
	labels        []string
}

func (s *recordingSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.strokes = nil
	s.circles = nil
	s.labels = nil
}

func (s *recordingSurface) StrokePolyline(pts []Pixel, st Stroke) {
	s.strokes = append(s.strokes, strokeOp{pts: pts, st: st})
}

func (s *recordingSurface) FillCircle(center Pixel, radius float64, fill color.RGBA, outline Stroke) {
	s.circles = append(s.circles, center)
}

func (s *recordingSurface) Label(text string, at Pixel, align Align, c color.RGBA) {
	s.labels = append(s.labels, text)
}

func (s *recordingSurface) strokesWhere(match func(Stroke) bool) []strokeOp {
	var out []strokeOp
	for _, op := range s.strokes {
		if match(op.st) {
			out = append(out, op)
		}
	}
	return out
}
