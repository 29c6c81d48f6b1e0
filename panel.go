package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// paramField is one keyboard-editable parameter of the active family. step
// returns the update for exactly that family, moved by dir slider steps.
type paramField struct {
	label string
	value string
	step  func(dir int) Parameters
}

var familyInfo = map[Family]struct{ name, description string }{
	FamilyPolynomial:    {"Polynomial", "Sums of coefficients times powers of x."},
	FamilyBezier:        {"Bézier", "Parametric curve pulled towards its control points."},
	FamilyParametric:    {"Parametric", "x and y each driven by a function of t."},
	FamilyTrigonometric: {"Trigonometric", "A sine wave with amplitude, frequency and phase."},
	FamilyExponential:   {"Exponential", "A base raised to x, scaled and shifted."},
	FamilySpline:        {"Spline", "Not available yet."},
	FamilyConic:         {"Conic", "Not available yet."},
	FamilySpecial:       {"Special", "Not available yet."},
}

var exponentialBases = []float64{math.E, 2, 10}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// stepValue moves v by delta, rounds to the 0.1 slider grid and clamps.
func stepValue(v, delta, lo, hi float64) float64 {
	v = math.Round((v+delta)*10) / 10
	return math.Max(lo, math.Min(hi, v))
}

func fieldsFor(s CurveState) []paramField {
	switch s.Active {
	case FamilyPolynomial:
		if p := s.Params.Polynomial; p != nil {
			return polynomialFields(*p)
		}
	case FamilyBezier:
		if p := s.Params.Bezier; p != nil {
			return bezierFields(*p)
		}
	case FamilyParametric:
		if p := s.Params.Parametric; p != nil {
			return parametricFields(*p)
		}
	case FamilyTrigonometric:
		if p := s.Params.Trigonometric; p != nil {
			return trigonometricFields(*p)
		}
	case FamilyExponential:
		if p := s.Params.Exponential; p != nil {
			return exponentialFields(*p)
		}
	}
	return nil
}

func polynomialFields(p PolynomialParams) []paramField {
	update := func(next PolynomialParams) Parameters {
		return Parameters{Polynomial: &next}
	}
	fields := []paramField{{
		label: "degree",
		value: strconv.Itoa(p.Degree),
		step: func(dir int) Parameters {
			next := p
			next.Degree = max(1, min(5, p.Degree+dir))
			return update(next)
		},
	}}
	for i, c := range p.Coefficients {
		fields = append(fields, paramField{
			label: termLabel(len(p.Coefficients) - 1 - i),
			value: formatNumber(c),
			step: func(dir int) Parameters {
				next := p
				next.Coefficients = slices.Clone(p.Coefficients)
				next.Coefficients[i] = stepValue(c, 0.1*float64(dir), -5, 5)
				return update(next)
			},
		})
	}
	fields = append(fields,
		paramField{
			label: "offset step",
			value: formatNumber(p.OffsetStep),
			step: func(dir int) Parameters {
				next := p
				next.OffsetStep = stepValue(p.OffsetStep, 0.1*float64(dir), 0.1, 2)
				return update(next)
			},
		},
		paramField{
			label: "offset count",
			value: strconv.Itoa(p.OffsetCount),
			step: func(dir int) Parameters {
				next := p
				next.OffsetCount = max(0, min(40, p.OffsetCount+dir))
				return update(next)
			},
		},
	)
	return fields
}

func termLabel(power int) string {
	switch power {
	case 0:
		return "x^0"
	case 1:
		return "x"
	default:
		return "x^" + strconv.Itoa(power)
	}
}

func bezierFields(p BezierParams) []paramField {
	var fields []paramField
	for i, pt := range p.ControlPoints {
		move := func(dx, dy float64) Parameters {
			next := p
			next.ControlPoints = slices.Clone(p.ControlPoints)
			next.ControlPoints[i] = Pt(stepValue(pt.X, dx, viewXMin, viewXMax), stepValue(pt.Y, dy, viewYMin, viewYMax))
			return Parameters{Bezier: &next}
		}
		fields = append(fields,
			paramField{
				label: fmt.Sprintf("P%d x", i+1),
				value: formatNumber(pt.X),
				step:  func(dir int) Parameters { return move(0.1*float64(dir), 0) },
			},
			paramField{
				label: fmt.Sprintf("P%d y", i+1),
				value: formatNumber(pt.Y),
				step:  func(dir int) Parameters { return move(0, 0.1*float64(dir)) },
			},
		)
	}
	return fields
}

func cycleFunc(f ParametricFunc, dir int) ParametricFunc {
	n := int(FuncSquare) + 1
	return ParametricFunc(((int(f)+dir)%n + n) % n)
}

func parametricFields(p ParametricParams) []paramField {
	update := func(next ParametricParams) Parameters {
		return Parameters{Parametric: &next}
	}
	return []paramField{
		{
			label: "t min",
			value: formatNumber(p.TMin),
			step: func(dir int) Parameters {
				next := p
				next.TMin = stepValue(p.TMin, 0.1*float64(dir), -20, p.TMax-0.1)
				return update(next)
			},
		},
		{
			label: "t max",
			value: formatNumber(p.TMax),
			step: func(dir int) Parameters {
				next := p
				next.TMax = stepValue(p.TMax, 0.1*float64(dir), p.TMin+0.1, 20)
				return update(next)
			},
		},
		{
			label: "x(t)",
			value: p.XFunc.String(),
			step: func(dir int) Parameters {
				next := p
				next.XFunc = cycleFunc(p.XFunc, dir)
				return update(next)
			},
		},
		{
			label: "y(t)",
			value: p.YFunc.String(),
			step: func(dir int) Parameters {
				next := p
				next.YFunc = cycleFunc(p.YFunc, dir)
				return update(next)
			},
		},
		{
			label: "x scale",
			value: formatNumber(p.XScale),
			step: func(dir int) Parameters {
				next := p
				next.XScale = stepValue(p.XScale, 0.1*float64(dir), 0.1, 5)
				return update(next)
			},
		},
		{
			label: "y scale",
			value: formatNumber(p.YScale),
			step: func(dir int) Parameters {
				next := p
				next.YScale = stepValue(p.YScale, 0.1*float64(dir), 0.1, 5)
				return update(next)
			},
		},
	}
}

func trigonometricFields(p TrigonometricParams) []paramField {
	update := func(next TrigonometricParams) Parameters {
		return Parameters{Trigonometric: &next}
	}
	return []paramField{
		{
			label: "amplitude",
			value: formatNumber(p.Amplitude),
			step: func(dir int) Parameters {
				next := p
				next.Amplitude = stepValue(p.Amplitude, 0.1*float64(dir), 0.1, 5)
				return update(next)
			},
		},
		{
			label: "frequency",
			value: formatNumber(p.Frequency),
			step: func(dir int) Parameters {
				next := p
				next.Frequency = stepValue(p.Frequency, 0.1*float64(dir), 0.1, 5)
				return update(next)
			},
		},
		{
			label: "phase",
			value: formatNumber(p.Phase),
			step: func(dir int) Parameters {
				next := p
				next.Phase = stepValue(p.Phase, 0.1*float64(dir), -math.Pi, math.Pi)
				return update(next)
			},
		},
	}
}

func exponentialFields(p ExponentialParams) []paramField {
	update := func(next ExponentialParams) Parameters {
		return Parameters{Exponential: &next}
	}
	return []paramField{
		{
			label: "base",
			value: baseLabel(p.Base),
			step: func(dir int) Parameters {
				next := p
				i := slices.Index(exponentialBases, p.Base)
				if i < 0 {
					i = 0
				} else {
					n := len(exponentialBases)
					i = ((i+dir)%n + n) % n
				}
				next.Base = exponentialBases[i]
				return update(next)
			},
		},
		{
			label: "coefficient",
			value: formatNumber(p.Coefficient),
			step: func(dir int) Parameters {
				next := p
				next.Coefficient = stepValue(p.Coefficient, 0.1*float64(dir), -5, 5)
				return update(next)
			},
		},
		{
			label: "vertical shift",
			value: formatNumber(p.VerticalShift),
			step: func(dir int) Parameters {
				next := p
				next.VerticalShift = stepValue(p.VerticalShift, 0.1*float64(dir), -5, 5)
				return update(next)
			},
		},
	}
}

func baseLabel(b float64) string {
	if b == math.E {
		return "e"
	}
	return formatNumber(b)
}

// formula renders the active curve as plain text.
func formula(s CurveState) string {
	switch s.Active {
	case FamilyPolynomial:
		if p := s.Params.Polynomial; p != nil {
			return "f(x) = " + polynomialFormula(p.Coefficients)
		}
	case FamilyBezier:
		if p := s.Params.Bezier; p != nil {
			return fmt.Sprintf("Bézier curve with %d control points", len(p.ControlPoints))
		}
	case FamilyParametric:
		if p := s.Params.Parametric; p != nil {
			return fmt.Sprintf("x = %s%s(t), y = %s%s(t)",
				scalePrefix(p.XScale), p.XFunc, scalePrefix(p.YScale), p.YFunc)
		}
	case FamilyTrigonometric:
		if p := s.Params.Trigonometric; p != nil {
			freq := ""
			if p.Frequency != 1 {
				freq = formatNumber(p.Frequency)
			}
			phase := ""
			if p.Phase != 0 {
				phase = signedTerm(p.Phase)
			}
			return fmt.Sprintf("f(x) = %s sin(%sx%s)", formatNumber(p.Amplitude), freq, phase)
		}
	case FamilyExponential:
		if p := s.Params.Exponential; p != nil {
			coeff := ""
			if p.Coefficient != 1 {
				coeff = formatNumber(p.Coefficient) + "·"
			}
			shift := ""
			if p.VerticalShift != 0 {
				shift = signedTerm(p.VerticalShift)
			}
			return fmt.Sprintf("f(x) = %s%s^x%s", coeff, baseLabel(p.Base), shift)
		}
	}
	return ""
}

func funcExpr(f ParametricFunc) string {
	switch f {
	case FuncCos, FuncSin:
		return f.String() + "(t)"
	default:
		return f.String()
	}
}

func signedTerm(v float64) string {
	if v < 0 {
		return " - " + formatNumber(-v)
	}
	return " + " + formatNumber(v)
}

func scalePrefix(v float64) string {
	if v == 1 {
		return ""
	}
	return formatNumber(v) + "·"
}

func polynomialFormula(coeffs []float64) string {
	var b strings.Builder
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		power := len(coeffs) - 1 - i
		sign := "+"
		if c < 0 {
			sign = "-"
		}
		if b.Len() == 0 {
			if sign == "-" {
				b.WriteString("-")
			}
		} else {
			b.WriteString(" " + sign + " ")
		}
		a := math.Abs(c)
		if a != 1 || power == 0 {
			b.WriteString(formatNumber(a))
		}
		switch {
		case power == 1:
			b.WriteString("x")
		case power > 1:
			b.WriteString("x^" + strconv.Itoa(power))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
