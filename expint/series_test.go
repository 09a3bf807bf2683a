package expint

import (
	stdmath "math"
	"testing"
)

func TestSeriesEiConverges(t *testing.T) {
	cfg := DefaultConfig()
	for _, x := range []float64{-0.999, -0.5, -1e-3, -1e-300, 1e-300, 1e-3, 0.5, 5, 10} {
		a := seriesEi(x, cfg)
		if a.Degraded {
			t.Errorf("seriesEi(%v) hit the iteration cap", x)
		}
		if stdmath.IsNaN(a.Value) {
			t.Errorf("seriesEi(%v) = NaN", x)
		}
	}
}

// Σ 1/(n·n!) = Ei(1) - γ, a closed-form check of the summation itself.
func TestSeriesEiSumAtOne(t *testing.T) {
	const want = 1.3179021514544039
	a := seriesEi(1, DefaultConfig())
	got := a.Value - eulerGamma // ln(1) = 0
	if re := relErr(got, want); re > 1e-14 {
		t.Errorf("Σ 1/(n·n!) = %v, want %v (rel err %.3g)", got, want, re)
	}
}

func TestSeriesEiCapHit(t *testing.T) {
	cfg := Config{Epsilon: 1e-30, MaxIterations: 3}
	a := seriesEi(0.75, cfg)
	if !a.Degraded {
		t.Error("seriesEi with a 3-term cap should report Degraded")
	}
	if stdmath.IsNaN(a.Value) || stdmath.IsInf(a.Value, 0) {
		t.Errorf("degraded seriesEi value = %v, want finite", a.Value)
	}
	if a.Error <= 0 {
		t.Errorf("degraded seriesEi error estimate = %v, want positive", a.Error)
	}
}

// Near the origin Ei(x) ≈ γ + ln|x| + x; the series must reproduce that
// dominant behavior for tiny arguments of both signs.
func TestSeriesEiTinyArguments(t *testing.T) {
	cfg := DefaultConfig()
	for _, x := range []float64{-1e-8, 1e-8, 1e-15} {
		want := eulerGamma + stdmath.Log(stdmath.Abs(x)) + x
		a := seriesEi(x, cfg)
		if re := relErr(a.Value, want); re > 1e-15 {
			t.Errorf("seriesEi(%v) = %v, want ≈ %v (rel err %.3g)", x, a.Value, want, re)
		}
	}
}
