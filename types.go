package main

import (
	"fmt"
	"math"
	"slices"
)

// Point is a position in mathematical space.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (1-t)*p.X + t*o.X,
		Y: (1-t)*p.Y + t*o.Y,
	}
}

func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Pixel is a position on a surface, y pointing down.
type Pixel struct {
	X, Y float64
}

func (p Pixel) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PolynomialParams stores coefficients highest power first, so
// Coefficients[i] multiplies x^(Degree-i).
type PolynomialParams struct {
	Degree       int
	Coefficients []float64
	OffsetStep   float64
	OffsetCount  int
}

// BezierParams.Degree is informational only; len(ControlPoints) wins.
type BezierParams struct {
	Degree        int
	ControlPoints []Point
}

type ParametricParams struct {
	TMin, TMax     float64
	XFunc, YFunc   ParametricFunc
	XScale, YScale float64
}

type TrigonometricParams struct {
	Amplitude float64
	Frequency float64
	Phase     float64
}

type ExponentialParams struct {
	Base          float64
	Coefficient   float64
	VerticalShift float64
}

// Parameters holds one optional parameter set per family. It is used both as
// the full snapshot held by CurveState and as a partial update, where every
// non-nil field replaces the family's current set.
type Parameters struct {
	Polynomial    *PolynomialParams
	Bezier        *BezierParams
	Parametric    *ParametricParams
	Trigonometric *TrigonometricParams
	Exponential   *ExponentialParams
}

// Clone returns a deep copy.
func (p Parameters) Clone() Parameters {
	var out Parameters
	if p.Polynomial != nil {
		poly := *p.Polynomial
		poly.Coefficients = slices.Clone(poly.Coefficients)
		out.Polynomial = &poly
	}
	if p.Bezier != nil {
		bez := *p.Bezier
		bez.ControlPoints = slices.Clone(bez.ControlPoints)
		out.Bezier = &bez
	}
	if p.Parametric != nil {
		par := *p.Parametric
		out.Parametric = &par
	}
	if p.Trigonometric != nil {
		trig := *p.Trigonometric
		out.Trigonometric = &trig
	}
	if p.Exponential != nil {
		exp := *p.Exponential
		out.Exponential = &exp
	}
	return out
}

// Action is one undoable state change. Data is the state after the change,
// Inverse the state before it.
type Action struct {
	Type    ActionType
	Data    CurveState
	Inverse CurveState
}

// PointerEvent is one pointer report in surface pixels. Slop is the half
// extent of the area the pointer may actually be in; a terminal only knows
// the cell, not the pixel.
type PointerEvent struct {
	Kind PointerKind
	At   Pixel
	Slop Pixel
}

// PointerResult is what the interaction controller hands back for one event.
// Consumed means the event must not fall through to any default handling
// (a context menu, for instance).
type PointerResult struct {
	Update   *Parameters
	Consumed bool
}

type model struct {
	width          int
	height         int
	mode           Mode
	state          CurveState
	interaction    *Interaction
	pointer        *pointerAdapter
	renderer       Renderer
	focus          int
	undoStack      []Action
	redoStack      []Action
	dragStart      CurveState
	config         *Config
	errorMessage   string
	successMessage string
}
