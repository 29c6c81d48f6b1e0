package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(fields []paramField) []string {
	var out []string
	for _, f := range fields {
		out = append(out, f.label)
	}
	return out
}

func TestFormula(t *testing.T) {
	s := newCurveState(nil)
	tests := []struct {
		state CurveState
		want  string
	}{
		{s, "f(x) = x^2"},
		{s.WithFamily(FamilyBezier), "Bézier curve with 3 control points"},
		{s.WithFamily(FamilyParametric), "x = cos(t), y = sin(t)"},
		{s.WithFamily(FamilyTrigonometric), "f(x) = 1 sin(x)"},
		{s.WithFamily(FamilyExponential), "f(x) = e^x"},
		{s.WithFamily(FamilyConic), ""},
		{
			s.WithFamily(FamilyTrigonometric).Apply(Parameters{Trigonometric: &TrigonometricParams{Amplitude: 2, Frequency: 0.5, Phase: 1}}),
			"f(x) = 2 sin(0.5x + 1)",
		},
		{
			s.WithFamily(FamilyExponential).Apply(Parameters{Exponential: &ExponentialParams{Base: 2, Coefficient: 3, VerticalShift: -1}}),
			"f(x) = 3·2^x - 1",
		},
		{
			s.WithFamily(FamilyParametric).Apply(Parameters{Parametric: &ParametricParams{TMax: 1, XFunc: FuncIdentity, YFunc: FuncSquare, XScale: 2, YScale: 1}}),
			"x = 2·t, y = t^2",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formula(tt.state))
	}
}

func TestPolynomialFormula(t *testing.T) {
	tests := map[string][]float64{
		"x^2 - 2x + 3":  {1, -2, 3},
		"-x^2 + 0.5":    {-1, 0, 0.5},
		"0":             {0, 0, 0},
		"-1":            {0, 0, -1},
		"1":             {1},
		"2.5x^3 + x":    {2.5, 0, 1, 0},
		"x^5":           {1, 0, 0, 0, 0, 0},
		"-3x^4 - x + 1": {-3, 0, 0, -1, 1},
	}
	for want, coeffs := range tests {
		assert.Equal(t, want, polynomialFormula(coeffs), "%v", coeffs)
	}
}

func TestPolynomialFields(t *testing.T) {
	s := newCurveState(nil)
	fields := fieldsFor(s)
	assert.Equal(t, []string{"degree", "x^2", "x", "x^0", "offset step", "offset count"}, labels(fields))
	assert.Equal(t, "2", fields[0].value)

	lower := s.Apply(fields[0].step(-1))
	assert.Equal(t, 1, lower.Params.Polynomial.Degree)
	assert.Equal(t, []float64{1, 0}, lower.Params.Polynomial.Coefficients)
	// degree never drops below one from the panel
	lowest := lower.Apply(fieldsFor(lower)[0].step(-1))
	assert.Equal(t, 1, lowest.Params.Polynomial.Degree)

	top := s.Apply(fields[0].step(10))
	assert.Equal(t, 5, top.Params.Polynomial.Degree)

	next := s.Apply(fields[3].step(-15))
	assert.Equal(t, -1.5, next.Params.Polynomial.Coefficients[2])

	next = s.Apply(fields[5].step(-100))
	assert.Equal(t, 0, next.Params.Polynomial.OffsetCount)
	next = s.Apply(fields[4].step(-100))
	assert.Equal(t, 0.1, next.Params.Polynomial.OffsetStep)
}

func TestBezierFields(t *testing.T) {
	s := newCurveState(nil).WithFamily(FamilyBezier)
	fields := fieldsFor(s)
	assert.Equal(t, []string{"P1 x", "P1 y", "P2 x", "P2 y", "P3 x", "P3 y"}, labels(fields))

	next := s.Apply(fields[3].step(3))
	diff(t, Pt(0, 5.3), next.Params.Bezier.ControlPoints[1], approx)
	assert.Equal(t, Pt(0, 5), s.Params.Bezier.ControlPoints[1])

	next = s.Apply(fields[0].step(-100))
	assert.Equal(t, -10.0, next.Params.Bezier.ControlPoints[0].X)
}

func TestParametricFields(t *testing.T) {
	s := newCurveState(nil).WithFamily(FamilyParametric)
	fields := fieldsFor(s)
	require.Len(t, fields, 6)
	assert.Equal(t, "cos", fields[2].value)

	next := s.Apply(fields[2].step(1))
	assert.Equal(t, FuncSin, next.Params.Parametric.XFunc)

	// t min never passes t max
	next = s.Apply(fields[0].step(1000))
	assert.Less(t, next.Params.Parametric.TMin, next.Params.Parametric.TMax)
}

func TestCycleFunc(t *testing.T) {
	assert.Equal(t, FuncCos, cycleFunc(FuncSquare, 1))
	assert.Equal(t, FuncSquare, cycleFunc(FuncCos, -1))
	assert.Equal(t, FuncIdentity, cycleFunc(FuncCos, 2))
}

func TestExponentialBaseCycles(t *testing.T) {
	s := newCurveState(nil).WithFamily(FamilyExponential)
	var bases []string
	for range 4 {
		f := fieldsFor(s)[0]
		bases = append(bases, f.value)
		s = s.Apply(f.step(1))
	}
	assert.Equal(t, []string{"e", "2", "10", "e"}, bases)
	assert.Equal(t, math.E, s.Params.Exponential.Base)
}

func TestTrigonometricPhaseLimits(t *testing.T) {
	s := newCurveState(nil).WithFamily(FamilyTrigonometric)
	next := s.Apply(fieldsFor(s)[2].step(100))
	assert.Equal(t, math.Pi, next.Params.Trigonometric.Phase)
}

func TestStepValue(t *testing.T) {
	assert.Equal(t, 0.4, stepValue(0.3, 0.1, -5, 5))
	assert.Equal(t, 5.0, stepValue(4.95, 1, -5, 5))
	assert.Equal(t, -5.0, stepValue(-4.95, -1, -5, 5))
}

func TestFieldsForReservedFamily(t *testing.T) {
	assert.Empty(t, fieldsFor(newCurveState(nil).WithFamily(FamilySpline)))
	assert.Empty(t, fieldsFor(CurveState{Active: FamilyBezier}))
}

func TestParameterSummary(t *testing.T) {
	summary := parameterSummary(newCurveState(nil))
	assert.Contains(t, summary, "f(x) = x^2")
	assert.Contains(t, summary, "degree = 2")
	assert.Contains(t, summary, "offset count = 20")
}
