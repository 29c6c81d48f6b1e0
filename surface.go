package main

import (
	"image/color"
	"math"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Stroke describes how a polyline is drawn.
type Stroke struct {
	Color   color.RGBA
	Width   float64
	Opacity float64
}

// Surface is anything the renderer can draw on. Coordinates are pixels with
// the origin in the top left corner.
type Surface interface {
	Size() (width, height float64)
	Clear()
	StrokePolyline(pts []Pixel, st Stroke)
	FillCircle(center Pixel, radius float64, fill color.RGBA, outline Stroke)
	Label(text string, at Pixel, align Align, c color.RGBA)
}

type cell struct {
	ch    rune
	color color.RGBA
	faint bool
}

// cellSurface rasterises onto a grid of terminal cells, each cell covering
// cellWidth x cellHeight pixels.
type cellSurface struct {
	cols, rows int
	cells      [][]cell
}

func newCellSurface(cols, rows int) *cellSurface {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s := &cellSurface{cols: cols, rows: rows}
	s.Clear()
	return s
}

func (s *cellSurface) Size() (float64, float64) {
	return float64(s.cols) * cellWidth, float64(s.rows) * cellHeight
}

func (s *cellSurface) Clear() {
	s.cells = make([][]cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]cell, s.cols)
		for x := range s.cells[y] {
			s.cells[y][x] = cell{ch: ' '}
		}
	}
}

func (s *cellSurface) isValidPos(x, y int) bool {
	return y >= 0 && y < s.rows && x >= 0 && x < s.cols
}

func (s *cellSurface) toCell(p Pixel) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// At returns the glyph at a cell, or a space when out of range.
func (s *cellSurface) At(x, y int) rune {
	if !s.isValidPos(x, y) {
		return ' '
	}
	return s.cells[y][x].ch
}

// StrokePolyline draws heavy strokes over anything already there. Light
// strokes only fill empty cells, and faint ones are drawn as dots.
func (s *cellSurface) StrokePolyline(pts []Pixel, st Stroke) {
	heavy := st.Width >= 2 && st.Opacity >= 0.5
	faint := st.Opacity < 0.5
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		x0, y0 := s.toCell(a)
		x1, y1 := s.toCell(b)
		ch := slopeGlyph(b.X-a.X, b.Y-a.Y)
		if faint {
			ch = '·'
		}
		s.line(x0, y0, x1, y1, func(x, y int) {
			if !s.isValidPos(x, y) {
				return
			}
			if !heavy && s.cells[y][x].ch != ' ' {
				return
			}
			s.cells[y][x] = cell{ch: ch, color: st.Color, faint: faint}
		})
	}
}

// line walks the cells between two cell positions (Bresenham).
func (s *cellSurface) line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for steps := 0; steps <= s.cols+s.rows+dx-dy; steps++ {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// slopeGlyph picks a box drawing glyph for a direction in pixel space.
func slopeGlyph(dx, dy float64) rune {
	// compare in cell units, cells are twice as tall as wide
	cx, cy := math.Abs(dx/cellWidth), math.Abs(dy/cellHeight)
	switch {
	case cx >= 2*cy:
		return '─'
	case cy >= 2*cx:
		return '│'
	case (dx > 0) == (dy < 0):
		return '╱'
	default:
		return '╲'
	}
}

func (s *cellSurface) FillCircle(center Pixel, radius float64, fill color.RGBA, outline Stroke) {
	if !center.IsFinite() {
		return
	}
	x, y := s.toCell(center)
	if s.isValidPos(x, y) {
		s.cells[y][x] = cell{ch: '●', color: fill}
	}
}

func (s *cellSurface) Label(text string, at Pixel, align Align, c color.RGBA) {
	if !at.IsFinite() {
		return
	}
	runes := []rune(text)
	x, y := s.toCell(at)
	switch align {
	case AlignCenter:
		x -= len(runes) / 2
	case AlignRight:
		x -= len(runes) - 1
	}
	for i, r := range runes {
		if s.isValidPos(x+i, y) {
			s.cells[y][x+i] = cell{ch: r, color: c}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
