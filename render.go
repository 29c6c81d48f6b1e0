package main

import (
	"image/color"
	"math"
	"strconv"
)

type Theme struct {
	Grid         color.RGBA
	Label        color.RGBA
	Axis         color.RGBA
	Curve        color.RGBA
	ControlPoint color.RGBA
	ControlEdge  color.RGBA
	ControlLine  color.RGBA
	Intermediate color.RGBA
}

var defaultTheme = Theme{
	Grid:         color.RGBA{0xe5, 0xe7, 0xeb, 0xff},
	Label:        color.RGBA{0x6b, 0x72, 0x80, 0xff},
	Axis:         color.RGBA{0x37, 0x41, 0x51, 0xff},
	Curve:        color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	ControlPoint: color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	ControlEdge:  color.RGBA{0x25, 0x63, 0xeb, 0xff},
	ControlLine:  color.RGBA{0x93, 0xc5, 0xfd, 0xff},
	Intermediate: color.RGBA{0xf5, 0x9e, 0x0b, 0xff},
}

const (
	controlPointRadius = 4.0
	labelOffset        = 20.0
	labelGap           = 10.0
)

// Renderer draws a curve state onto a surface. It keeps no drawing state
// between calls; every Draw clears the surface and redraws everything.
type Renderer struct {
	Viewport Viewport
	Theme    Theme

	// ShowIntermediate overlays the De Casteljau levels at IntermediateT
	// for Bézier curves.
	ShowIntermediate bool
	IntermediateT    float64
}

func newRenderer() Renderer {
	return Renderer{
		Viewport:      defaultViewport,
		Theme:         defaultTheme,
		IntermediateT: 0.5,
	}
}

func (r Renderer) transformFor(s Surface) Transform {
	w, h := s.Size()
	return newTransform(r.Viewport, w, h)
}

// Draw clears s and draws the grid, the active curve and its overlays.
// Nothing but the clear happens while the surface is too small for the
// padded viewport.
func (r Renderer) Draw(s Surface, state CurveState) {
	s.Clear()
	tr := r.transformFor(s)
	if !tr.Valid() {
		return
	}

	r.drawGrid(s, tr)

	if state.Active == FamilyPolynomial && state.Params.Polynomial != nil {
		r.drawOffsetFamily(s, tr, *state.Params.Polynomial)
	}

	r.drawTrace(s, tr, traceFamily(r.Viewport, state), Stroke{
		Color:   r.Theme.Curve,
		Width:   2,
		Opacity: 1,
	})

	if state.Active == FamilyBezier && state.Params.Bezier != nil {
		pts := state.Params.Bezier.ControlPoints
		if r.ShowIntermediate {
			r.drawIntermediate(s, tr, pts)
		}
		r.drawControls(s, tr, pts)
	}
}

func (r Renderer) drawGrid(s Surface, tr Transform) {
	grid := Stroke{Color: r.Theme.Grid, Width: 1, Opacity: 1}
	minX, minY, maxX, maxY := tr.PlotRect()

	for x := math.Ceil(tr.XMin); x <= tr.XMax; x++ {
		px := tr.ToPixelX(x)
		r.strokeClipped(s, tr, []Pixel{{px, minY}, {px, maxY}}, grid)
		s.Label(strconv.Itoa(int(x)), Pixel{px, tr.Height - tr.Padding + labelOffset}, AlignCenter, r.Theme.Label)
	}
	for y := math.Ceil(tr.YMin); y <= tr.YMax; y++ {
		py := tr.ToPixelY(y)
		r.strokeClipped(s, tr, []Pixel{{minX, py}, {maxX, py}}, grid)
		s.Label(strconv.Itoa(int(y)), Pixel{tr.Padding - labelGap, py}, AlignRight, r.Theme.Label)
	}

	axis := Stroke{Color: r.Theme.Axis, Width: 2, Opacity: 1}
	yAxis := tr.ToPixelY(0)
	r.strokeClipped(s, tr, []Pixel{{minX, yAxis}, {maxX, yAxis}}, axis)
	xAxis := tr.ToPixelX(0)
	r.strokeClipped(s, tr, []Pixel{{xAxis, minY}, {xAxis, maxY}}, axis)
}

// offsetOpacity fades copies of the curve with their distance from it.
func offsetOpacity(i, count int) float64 {
	return math.Max(minOffsetAlpha, 1-math.Abs(float64(i))/float64(count))
}

func (r Renderer) drawOffsetFamily(s Surface, tr Transform, p PolynomialParams) {
	if p.OffsetCount <= 0 {
		return
	}
	step := p.OffsetStep
	if !(step > 0) {
		step = defaultOffStep
	}
	for i := -p.OffsetCount; i <= p.OffsetCount; i++ {
		if i == 0 {
			continue
		}
		r.drawTrace(s, tr, tracePolynomial(r.Viewport, p, float64(i)*step), Stroke{
			Color:   r.Theme.Curve,
			Width:   1,
			Opacity: offsetOpacity(i, p.OffsetCount),
		})
	}
}

func (r Renderer) drawTrace(s Surface, tr Transform, pts []Point, st Stroke) {
	px := make([]Pixel, len(pts))
	for i, p := range pts {
		px[i] = tr.ToPixel(p)
	}
	r.strokeClipped(s, tr, px, st)
}

// strokeClipped strokes pts after splitting it into runs that are finite
// and inside the surface. Non-finite samples leave a gap.
func (r Renderer) strokeClipped(s Surface, tr Transform, pts []Pixel, st Stroke) {
	for _, run := range visibleRuns(pts, tr.Width, tr.Height) {
		s.StrokePolyline(run, st)
	}
}

func visibleRuns(pts []Pixel, width, height float64) [][]Pixel {
	var runs [][]Pixel
	var cur []Pixel
	flush := func() {
		if len(cur) >= 2 {
			runs = append(runs, cur)
		}
		cur = nil
	}

	var prev Pixel
	havePrev := false
	for _, p := range pts {
		if !p.IsFinite() {
			flush()
			havePrev = false
			continue
		}
		if havePrev {
			a, b, ok := clipSegment(prev, p, 0, 0, width, height)
			if !ok {
				flush()
			} else {
				if len(cur) == 0 || cur[len(cur)-1] != a {
					flush()
					cur = append(cur, a)
				}
				cur = append(cur, b)
				if b != p {
					flush()
				}
			}
		}
		prev, havePrev = p, true
	}
	flush()
	return runs
}

func (r Renderer) drawControls(s Surface, tr Transform, pts []Point) {
	if len(pts) == 0 {
		return
	}
	edge := Stroke{Color: r.Theme.ControlEdge, Width: 2, Opacity: 1}
	for _, p := range pts {
		c := tr.ToPixel(p)
		if !c.IsFinite() {
			continue
		}
		s.FillCircle(c, controlPointRadius, r.Theme.ControlPoint, edge)
	}
	r.drawTrace(s, tr, pts, Stroke{Color: r.Theme.ControlLine, Width: 1, Opacity: 1})
}

// drawIntermediate draws every reduction level below the control polygon
// itself, ending with the evaluated point.
func (r Renderer) drawIntermediate(s Surface, tr Transform, pts []Point) {
	st := Stroke{Color: r.Theme.Intermediate, Width: 1, Opacity: 0.8}
	first := true
	for level := range IntermediatePoints(r.IntermediateT, pts) {
		if first {
			first = false
			continue
		}
		if len(level) == 1 {
			if c := tr.ToPixel(level[0]); c.IsFinite() {
				s.FillCircle(c, controlPointRadius, r.Theme.Intermediate, st)
			}
			continue
		}
		r.drawTrace(s, tr, level, st)
	}
}
