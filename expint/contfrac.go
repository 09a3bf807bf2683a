package expint

import (
	stdmath "math"
)

// tiny floors a vanishing convergent in the Lentz recurrence so the update
// never divides by zero.
const tiny = 1e-300

// contFracE1 evaluates E1(y) for moderate y > 0 via the continued fraction
//
//	E1(y) = e⁻ʸ / (y + 1 - 1²/(y + 3 - 2²/(y + 5 - ...)))
//
// using the modified Lentz algorithm: c and d track the ratios of successive
// numerator and denominator convergents, and iteration stops when their
// product delta is within tolerance of 1. Ei(x) = -E1(-x) for x < 0, which
// is how the dispatcher consumes this for the moderate negative region.
//
// The convergent ratio cannot be resolved more finely than a few ulps, so
// tolerances below that are clamped here; without the clamp a sub-ulp
// Epsilon would spin to the cap on rounding noise.
func contFracE1(y float64, cfg Config) Approx {
	eps := cfg.Epsilon
	if eps < 4*dblEpsilon {
		eps = 4 * dblEpsilon
	}

	b := y + 1
	c := 1 / tiny
	d := 1 / b
	h := d
	delta := 0.0
	degraded := true
	for i := 1; i <= cfg.MaxIterations; i++ {
		a := -float64(i) * float64(i)
		b += 2
		d = a*d + b
		if stdmath.Abs(d) < tiny {
			d = tiny
		}
		d = 1 / d
		c = b + a/c
		if stdmath.Abs(c) < tiny {
			c = tiny
		}
		delta = c * d
		h *= delta
		if stdmath.Abs(delta-1) < eps {
			degraded = false
			break
		}
	}

	value := h * stdmath.Exp(-y)
	errEst := stdmath.Abs(delta-1)*stdmath.Abs(value) +
		2*dblEpsilon*(y+1)*stdmath.Abs(value)
	return Approx{Value: value, Error: errEst, Degraded: degraded}
}
