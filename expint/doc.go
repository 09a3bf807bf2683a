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

// Package expint computes the exponential integral
//
//	Ei(x) = PV ∫_{-∞}^{x} eᵘ/u du
//
// and the complementary exponential integral E1(x) = -Ei(-x) for float64
// arguments.
//
// No single expansion of Ei behaves across the whole real line: the power
// series diverges slowly and cancels destructively away from the origin, and
// the asymptotic series diverges outright near it. Evaluation is therefore
// piecewise, dispatching on the argument's sign and magnitude:
//
//   - (-1, 0) and (0, 10]: the power series γ + ln|x| + Σ xⁿ/(n·n!), summed
//     forward with Kahan compensation.
//   - [-40, -1]: the continued fraction for E1, evaluated with the modified
//     Lentz algorithm.
//   - (10, 40]: a Chebyshev fit of x·eˣ·E1(x) - 1, evaluated by the Clenshaw
//     recurrence.
//   - beyond ±40: the divergent asymptotic series (eˣ/x)·Σ k!/xᵏ, truncated
//     at its smallest term.
//
// The boundaries above are the defaults; the asymptotic threshold and the
// iteration/tolerance parameters are tunable through Config.
//
// # Accuracy
//
// Relative error is within a small multiple of 1e-16 in every region, except
// near the positive zero of Ei (x ≈ 0.3725) where relative error necessarily
// degrades (the absolute error stays at rounding level). The EiE and E1E
// variants report a per-call estimate of the absolute error alongside the
// value.
//
// # Special cases
//
//	Ei(0) fails with ErrSingularity
//	Ei(NaN) fails with ErrNotFinite
//	Ei(+Inf) = +Inf
//	Ei(-Inf) = 0
//	Ei(x) = 0 for x below the eˣ underflow bound (x ≲ -745)
//	Ei(x) = +Inf for x above the eˣ overflow bound (x ≳ 709.78)
//
// All evaluation is pure and stateless: calls are deterministic, reentrant,
// and safe for concurrent use without locking.
package expint
