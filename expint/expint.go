// Copyright 2026 exponential-integral Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expint

import (
	"errors"
	"fmt"
	stdmath "math"
)

// Domain errors. Both are surfaced immediately; a domain failure is never
// silently approximated.
var (
	// ErrSingularity is returned for x = 0, where Ei has a logarithmic
	// singularity and no principal value.
	ErrSingularity = errors.New("expint: argument is the singularity x = 0")

	// ErrNotFinite is returned for NaN arguments. Infinite arguments are not
	// errors: they evaluate to the corresponding limit.
	ErrNotFinite = errors.New("expint: argument is not a number")
)

// Approx is an approximate value together with an estimate of its own
// absolute error, in the manner of GSL's gsl_sf_result.
type Approx struct {
	// Value is the approximation.
	Value float64
	// Error estimates the absolute error |Value - exact|.
	Error float64
	// Degraded reports that an iteration cap was hit before the convergence
	// tolerance was met. The value is still a usable best-effort
	// approximation; Degraded is a diagnostic, not a failure.
	Degraded bool
}

func (a Approx) String() string {
	return fmt.Sprintf("%v +/- %v", a.Value, a.Error)
}

// Ei returns the exponential integral of x using the default Config.
//
// Special cases are:
//
//	Ei(0) = 0, ErrSingularity
//	Ei(NaN) = NaN, ErrNotFinite
//	Ei(+Inf) = +Inf
//	Ei(-Inf) = 0
func Ei(x float64) (float64, error) {
	return DefaultConfig().Ei(x)
}

// EiE is Ei with an error estimate and degradation diagnostic attached.
func EiE(x float64) (Approx, error) {
	return DefaultConfig().EiE(x)
}

// E1 returns the complementary exponential integral -Ei(-x) using the
// default Config. Its special cases mirror Ei's under x → -x.
func E1(x float64) (float64, error) {
	return DefaultConfig().E1(x)
}

// E1E is E1 with an error estimate and degradation diagnostic attached.
func E1E(x float64) (Approx, error) {
	return DefaultConfig().E1E(x)
}

// Ei returns the exponential integral of x. See the package-level Ei for the
// special cases.
func (cfg Config) Ei(x float64) (float64, error) {
	a, err := cfg.EiE(x)
	return a.Value, err
}

// EiE validates the domain, classifies x, and delegates to the evaluator
// owning its region, returning that evaluator's result unmodified.
func (cfg Config) EiE(x float64) (Approx, error) {
	switch {
	case stdmath.IsNaN(x):
		return Approx{Value: stdmath.NaN()}, ErrNotFinite
	case x == 0:
		return Approx{}, ErrSingularity
	case stdmath.IsInf(x, 1):
		return Approx{Value: stdmath.Inf(1), Error: stdmath.Inf(1)}, nil
	case stdmath.IsInf(x, -1):
		return Approx{Value: 0, Error: dblMin}, nil
	}

	cfg = cfg.normalized()
	switch r := cfg.classify(x); r {
	case nearZeroNeg, nearZeroPos:
		return seriesEi(x, cfg), nil
	case moderateNeg:
		a := contFracE1(-x, cfg)
		a.Value = -a.Value
		return a, nil
	case moderatePos:
		return chebEiPos(x), nil
	case largeNeg, largePos:
		return asympEi(x, cfg), nil
	default:
		panic(fmt.Sprintf("expint: unhandled region %v", r))
	}
}

// E1 returns the complementary exponential integral -Ei(-x).
func (cfg Config) E1(x float64) (float64, error) {
	a, err := cfg.E1E(x)
	return a.Value, err
}

// E1E is E1 with an error estimate and degradation diagnostic attached.
func (cfg Config) E1E(x float64) (Approx, error) {
	a, err := cfg.EiE(-x)
	a.Value = -a.Value
	return a, err
}
