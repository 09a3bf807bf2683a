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
	stdmath "math"
)

// Series is a Chebyshev expansion Σ' cⱼ·Tⱼ(y) on the interval [A, B], with
// the usual convention that the j = 0 coefficient is counted at half weight.
// The argument is mapped affinely from [A, B] onto Tⱼ's native [-1, 1].
type Series struct {
	// A and B are the interval endpoints, A < B.
	A, B float64
	// Coeffs holds c₀..cₙ.
	Coeffs []float64
}

// Eval evaluates the series at x using the Clenshaw recurrence, accumulating
// a rounding-error bound alongside the value. The bound also charges the
// magnitude of the last coefficient as truncation error, so a fit carries
// its own accuracy estimate.
func (s Series) Eval(x float64) Approx {
	y := (2*x - s.A - s.B) / (s.B - s.A)
	y2 := 2 * y

	var d, dd, e float64
	for j := len(s.Coeffs) - 1; j >= 1; j-- {
		tmp := d
		d = y2*d - dd + s.Coeffs[j]
		e += stdmath.Abs(y2*tmp) + stdmath.Abs(dd) + stdmath.Abs(s.Coeffs[j])
		dd = tmp
	}
	tmp := d
	d = y*d - dd + 0.5*s.Coeffs[0]
	e += stdmath.Abs(y*tmp) + stdmath.Abs(dd) + 0.5*stdmath.Abs(s.Coeffs[0])

	return Approx{
		Value: d,
		Error: dblEpsilon*e + stdmath.Abs(s.Coeffs[len(s.Coeffs)-1]),
	}
}

// ae11 is the AE11 expansion from GSL's specfunc/expint.c: a Chebyshev fit
// of x·eˣ·E1(x) - 1 for x ≤ -10, with the argument mapped as 20/x + 1.
var ae11 = Series{
	A: -1,
	B: 1,
	Coeffs: []float64{
		0.121503239716065790,
		-0.065088778513550150,
		0.004897651357459670,
		-0.000649237843027216,
		0.000093840434587471,
		0.000000420236380882,
		-0.000008113374735904,
		0.000002804247688663,
		0.000000056487164441,
		-0.000000344809174450,
		0.000000058209273578,
		0.000000038711426349,
		-0.000000012453235014,
		-0.000000005118504888,
		0.000000002148771527,
		0.000000000868459898,
		-0.000000000343650105,
		-0.000000000179796603,
		0.000000000047442060,
		0.000000000040423282,
		-0.000000000003543928,
		-0.000000000008853444,
		-0.000000000000960151,
		0.000000000001692921,
		0.000000000000607990,
		-0.000000000000224338,
		-0.000000000000200327,
		-0.000000000000006246,
		0.000000000000045571,
		0.000000000000016383,
		-0.000000000000005561,
		-0.000000000000006074,
		-0.000000000000000862,
		0.000000000000001223,
		0.000000000000000716,
		-0.000000000000000024,
		-0.000000000000000201,
		-0.000000000000000082,
		0.000000000000000017,
	},
}

// chebEiPos evaluates Ei(x) for chebPosCutoff < x < xMax through the ae11
// fit: Ei(x) = -E1(-x) = (eˣ/x)·(1 + AE11(1 - 20/x)). The error bound
// follows GSL's propagation for the same branch.
func chebEiPos(x float64) Approx {
	s := stdmath.Exp(x) / x
	c := ae11.Eval(1 - 20/x)
	value := s * (1 + c.Value)
	errEst := stdmath.Abs(s)*c.Error +
		2*dblEpsilon*(stdmath.Abs(x)+1)*stdmath.Abs(value)
	return Approx{Value: value, Error: errEst}
}
