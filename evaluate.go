package main

import (
	"iter"
	"math"
	"slices"
)

// maxSamples bounds a single trace so that absurd domains cannot stall a
// redraw.
const maxSamples = 1_000_000

// EvaluatePolynomial evaluates coefficients (highest power first) at x using
// Horner's method.
func EvaluatePolynomial(x float64, coeffs []float64) float64 {
	var sum float64
	for _, c := range coeffs {
		sum = sum*x + c
	}
	return sum
}

// EvaluateBezier evaluates the Bézier curve with control points pts at t by
// De Casteljau reduction. An empty control polygon yields a NaN point.
func EvaluateBezier(t float64, pts []Point) Point {
	switch len(pts) {
	case 0:
		return Point{X: math.NaN(), Y: math.NaN()}
	case 1:
		return pts[0]
	}
	return EvaluateBezier(t, casteljauStep(t, pts))
}

func casteljauStep(t float64, pts []Point) []Point {
	next := make([]Point, len(pts)-1)
	for i := range next {
		next[i] = pts[i].Lerp(pts[i+1], t)
	}
	return next
}

// IntermediatePoints yields every level of the De Casteljau reduction at t,
// starting with a copy of pts and ending with the single curve point. Each
// call to the returned sequence recomputes the levels.
func IntermediatePoints(t float64, pts []Point) iter.Seq[[]Point] {
	return func(yield func([]Point) bool) {
		level := slices.Clone(pts)
		if !yield(level) {
			return
		}
		for len(level) > 1 {
			level = casteljauStep(t, level)
			if !yield(level) {
				return
			}
		}
	}
}

func (f ParametricFunc) String() string {
	switch f {
	case FuncCos:
		return "cos"
	case FuncSin:
		return "sin"
	case FuncIdentity:
		return "t"
	case FuncSquare:
		return "t^2"
	default:
		return "?"
	}
}

func (f ParametricFunc) Apply(t float64) float64 {
	switch f {
	case FuncCos:
		return math.Cos(t)
	case FuncSin:
		return math.Sin(t)
	case FuncIdentity:
		return t
	case FuncSquare:
		return t * t
	default:
		return 0
	}
}

func EvaluateParametric(t float64, p ParametricParams) Point {
	return Point{
		X: p.XScale * p.XFunc.Apply(t),
		Y: p.YScale * p.YFunc.Apply(t),
	}
}

func EvaluateTrigonometric(x float64, p TrigonometricParams) float64 {
	return p.Amplitude * math.Sin(p.Frequency*x+p.Phase)
}

func EvaluateExponential(x float64, p ExponentialParams) float64 {
	return p.Coefficient*math.Pow(p.Base, x) + p.VerticalShift
}

// samples yields lo, lo+step, ... up to and including hi (within rounding).
// Each value is computed from its index so errors do not accumulate.
func samples(lo, hi, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !isFinite(lo) || !isFinite(hi) || !(step > 0) || hi < lo {
			return
		}
		n := math.Floor((hi-lo)/step + 1e-9)
		if n > maxSamples {
			n = maxSamples
		}
		for i := 0; i <= int(n); i++ {
			if !yield(lo + float64(i)*step) {
				return
			}
		}
	}
}

// traceFunc samples y = f(x) across the viewport's x range.
func traceFunc(vp Viewport, f func(float64) float64) []Point {
	var pts []Point
	for x := range samples(vp.XMin, vp.XMax, sampleStep) {
		pts = append(pts, Point{X: x, Y: f(x)})
	}
	return pts
}

// tracePolynomial samples the polynomial shifted vertically by offset.
func tracePolynomial(vp Viewport, p PolynomialParams, offset float64) []Point {
	return traceFunc(vp, func(x float64) float64 {
		return EvaluatePolynomial(x, p.Coefficients) + offset
	})
}

// traceFamily samples the active family in its natural domain: x for
// function graphs, t for Bézier and parametric curves. Missing parameter
// sets and reserved families produce no points.
func traceFamily(vp Viewport, s CurveState) []Point {
	switch s.Active {
	case FamilyPolynomial:
		if p := s.Params.Polynomial; p != nil {
			return tracePolynomial(vp, *p, 0)
		}
	case FamilyBezier:
		if p := s.Params.Bezier; p != nil {
			var pts []Point
			for t := range samples(0, 1, sampleStep) {
				pts = append(pts, EvaluateBezier(t, p.ControlPoints))
			}
			return pts
		}
	case FamilyParametric:
		if p := s.Params.Parametric; p != nil {
			var pts []Point
			for t := range samples(p.TMin, p.TMax, sampleStep) {
				pts = append(pts, EvaluateParametric(t, *p))
			}
			return pts
		}
	case FamilyTrigonometric:
		if p := s.Params.Trigonometric; p != nil {
			return traceFunc(vp, func(x float64) float64 {
				return EvaluateTrigonometric(x, *p)
			})
		}
	case FamilyExponential:
		if p := s.Params.Exponential; p != nil {
			return traceFunc(vp, func(x float64) float64 {
				return EvaluateExponential(x, *p)
			})
		}
	}
	return nil
}
