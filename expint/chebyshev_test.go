package expint

import (
	stdmath "math"
	"testing"
)

// Single-coefficient series must reproduce the Chebyshev polynomials
// themselves (with c₀ at half weight).
func TestSeriesEvalBasis(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0.25, 1}
	tests := []struct {
		name   string
		coeffs []float64
		f      func(x float64) float64
	}{
		{"half c0", []float64{2}, func(x float64) float64 { return 1 }},
		{"T1", []float64{0, 1}, func(x float64) float64 { return x }},
		{"T2", []float64{0, 0, 1}, func(x float64) float64 { return 2*x*x - 1 }},
		{"T3", []float64{0, 0, 0, 1}, func(x float64) float64 { return 4*x*x*x - 3*x }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Series{A: -1, B: 1, Coeffs: tt.coeffs}
			for _, x := range xs {
				got := s.Eval(x)
				want := tt.f(x)
				if stdmath.Abs(got.Value-want) > 1e-14 {
					t.Errorf("Eval(%v) = %v, want %v", x, got.Value, want)
				}
			}
		})
	}
}

// A series on [0, 4] with a lone T1 coefficient is the interval map itself.
func TestSeriesEvalIntervalMapping(t *testing.T) {
	s := Series{A: 0, B: 4, Coeffs: []float64{0, 1}}
	for _, x := range []float64{0, 1, 2, 3, 4} {
		got := s.Eval(x)
		want := (x - 2) / 2
		if stdmath.Abs(got.Value-want) > 1e-15 {
			t.Errorf("Eval(%v) = %v, want %v", x, got.Value, want)
		}
	}
}

func TestSeriesEvalErrorBound(t *testing.T) {
	got := ae11.Eval(0.5)
	if got.Error <= 0 {
		t.Errorf("Eval error bound = %v, want positive", got.Error)
	}
	last := ae11.Coeffs[len(ae11.Coeffs)-1]
	if got.Error < stdmath.Abs(last) {
		t.Errorf("Eval error bound %v below last-coefficient truncation %v", got.Error, last)
	}
}

// Ei(20) through the ae11 fit, against the defining integral identity
// Ei(x) = γ + ln x + Σ xⁿ/(n·n!) summed directly at full precision.
func TestChebEiPosMatchesSeries(t *testing.T) {
	got := chebEiPos(20)
	want := seriesEi(20, DefaultConfig())
	if re := relErr(got.Value, want.Value); re > 1e-13 {
		t.Errorf("chebEiPos(20) = %v, series gives %v (rel err %.3g)", got.Value, want.Value, re)
	}
}
