package main

import (
	"math"
	"slices"
	"strings"
)

var familyNames = map[Family]string{
	FamilyPolynomial:    "polynomial",
	FamilyBezier:        "bezier",
	FamilyParametric:    "parametric",
	FamilyTrigonometric: "trigonometric",
	FamilyExponential:   "exponential",
	FamilySpline:        "spline",
	FamilyConic:         "conic",
	FamilySpecial:       "special",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Reserved reports whether the family has no evaluator yet.
func (f Family) Reserved() bool {
	return f == FamilySpline || f == FamilyConic || f == FamilySpecial
}

func parseFamily(s string) (Family, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range familyNames {
		if name == s {
			return f, true
		}
	}
	return FamilyPolynomial, false
}

// CurveState is the single source of truth for the active family and every
// family's parameter set. Values are never mutated in place: Apply and
// WithFamily return a new state and share untouched parameter sets.
type CurveState struct {
	Active Family
	Params Parameters
}

func defaultParameters(cfg *Config) Parameters {
	offStep, offCount := defaultOffStep, defaultOffCount
	if cfg != nil {
		offStep, offCount = cfg.OffsetStep, cfg.OffsetCount
	}
	return Parameters{
		Polynomial: &PolynomialParams{
			Degree:       2,
			Coefficients: []float64{1, 0, 0},
			OffsetStep:   offStep,
			OffsetCount:  offCount,
		},
		Bezier: &BezierParams{
			Degree: 2,
			ControlPoints: []Point{
				Pt(-5, -5),
				Pt(0, 5),
				Pt(5, -5),
			},
		},
		Parametric: &ParametricParams{
			TMin:   0,
			TMax:   2 * math.Pi,
			XFunc:  FuncCos,
			YFunc:  FuncSin,
			XScale: 1,
			YScale: 1,
		},
		Trigonometric: &TrigonometricParams{
			Amplitude: 1,
			Frequency: 1,
			Phase:     0,
		},
		Exponential: &ExponentialParams{
			Base:          math.E,
			Coefficient:   1,
			VerticalShift: 0,
		},
	}
}

func newCurveState(cfg *Config) CurveState {
	active := FamilyPolynomial
	if cfg != nil {
		active = cfg.StartFamily
	}
	return CurveState{
		Active: active,
		Params: defaultParameters(cfg),
	}
}

// WithFamily switches the active family, keeping every parameter set.
func (s CurveState) WithFamily(f Family) CurveState {
	s.Active = f
	return s
}

// Apply merges a partial update: each non-nil family in u replaces the
// current set for that family. Polynomial updates additionally get their
// coefficient slice repaired to Degree+1 entries.
func (s CurveState) Apply(u Parameters) CurveState {
	u = u.Clone()
	if u.Polynomial != nil {
		poly := *u.Polynomial
		if poly.Degree < 0 {
			poly.Degree = 0
		}
		poly.Coefficients = repairCoefficients(poly.Coefficients, poly.Degree)
		s.Params.Polynomial = &poly
	}
	if u.Bezier != nil {
		s.Params.Bezier = u.Bezier
	}
	if u.Parametric != nil {
		s.Params.Parametric = u.Parametric
	}
	if u.Trigonometric != nil {
		s.Params.Trigonometric = u.Trigonometric
	}
	if u.Exponential != nil {
		s.Params.Exponential = u.Exponential
	}
	return s
}

// repairCoefficients pads with zeros or truncates so that the result has
// exactly degree+1 entries. The input is not modified.
func repairCoefficients(coeffs []float64, degree int) []float64 {
	if degree < 0 {
		degree = 0
	}
	out := slices.Clone(coeffs)
	for len(out) < degree+1 {
		out = append(out, 0)
	}
	return out[:degree+1]
}
