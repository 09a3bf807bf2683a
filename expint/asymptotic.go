package expint

import (
	stdmath "math"
)

// asympEi evaluates the asymptotic expansion
//
//	Ei(x) ≈ (eˣ/x) · Σ_{k≥0} k!/xᵏ
//
// for large |x| of either sign. The series diverges: its terms shrink until
// k ≈ |x| and then grow without bound, so summation must stop at the term of
// smallest magnitude — the moment the next term would not decrease, adding
// it only adds error. That early-stopping rule, not an epsilon test, is what
// makes this evaluator correct; Epsilon only provides an early exit when the
// terms bottom out below rounding significance first.
//
// Once eˣ underflows (x ≲ -745) the result is exactly 0, never the NaN that
// 0/x arithmetic would cascade into. Once eˣ overflows the result is +Inf,
// consistent with the Ei(+Inf) limit.
func asympEi(x float64, cfg Config) Approx {
	s := stdmath.Exp(x) / x
	if s == 0 {
		// |Ei(x)| is below the subnormal range.
		return Approx{Value: 0, Error: dblMin}
	}
	if stdmath.IsInf(s, 1) {
		return Approx{Value: stdmath.Inf(1), Error: stdmath.Inf(1)}
	}

	sum := 1.0
	term := 1.0 // k!/xᵏ
	for k := 1; k <= cfg.MaxIterations; k++ {
		next := term * float64(k) / x
		if stdmath.Abs(next) >= stdmath.Abs(term) {
			break // optimal truncation point
		}
		term = next
		sum += term
		if stdmath.Abs(term) < cfg.Epsilon*stdmath.Abs(sum) {
			break
		}
	}

	value := s * sum
	errEst := stdmath.Abs(s)*stdmath.Abs(term) +
		2*dblEpsilon*(stdmath.Abs(x)+1)*stdmath.Abs(value)
	return Approx{Value: value, Error: errEst}
}
