package expint

import (
	stdmath "math"
)

// seriesEi evaluates the power series
//
//	Ei(x) = γ + ln|x| + Σ_{n≥1} xⁿ/(n·n!)
//
// valid for small |x|. The terms alternate in sign for negative x, so the
// running sum is Kahan-compensated to keep the cancellation error at
// rounding level. Summation stops once a term falls below Epsilon relative
// to the running sum; exhausting MaxIterations first yields the partial sum
// marked Degraded rather than a failure, since the region boundaries keep
// convergence well inside the cap.
func seriesEi(x float64, cfg Config) Approx {
	var sum, comp float64
	term := 1.0 // xⁿ/n!
	tail := 0.0
	degraded := true
	for n := 1; n <= cfg.MaxIterations; n++ {
		term *= x / float64(n)
		t := term / float64(n)

		// Kahan update: comp carries the low-order bits the add dropped.
		y := t - comp
		next := sum + y
		comp = (next - sum) - y
		sum = next

		tail = stdmath.Abs(t)
		if tail < cfg.Epsilon*stdmath.Abs(sum) {
			degraded = false
			break
		}
	}

	lnTerm := stdmath.Log(stdmath.Abs(x))
	value := eulerGamma + lnTerm + sum
	errEst := tail +
		dblEpsilon*(eulerGamma+stdmath.Abs(lnTerm)+stdmath.Abs(sum)) +
		2*dblEpsilon*stdmath.Abs(value)
	return Approx{Value: value, Error: errEst, Degraded: degraded}
}
