package expint

// High-precision constants shared by the evaluators.
const (
	// eulerGamma is the Euler–Mascheroni constant γ, the constant term of
	// the power series for Ei.
	eulerGamma = 0.57721566490153286060651209008240243104215933593992

	// dblEpsilon is the gap between 1.0 and the next larger float64.
	dblEpsilon = 2.2204460492503131e-16

	// dblMin is the smallest positive normal float64.
	dblMin = 2.2250738585072014e-308
)

// Fixed region boundaries. The asymptotic boundary is configurable
// (Config.AsymptoticThreshold); these two are not, because they mark where
// the adjacent expansions stop being valid rather than where they stop being
// fast.
const (
	// seriesNegCutoff bounds the negative series region: for -1 < x < 0 the
	// power series converges in a few dozen terms and its alternating
	// cancellation stays mild.
	seriesNegCutoff = 1.0

	// chebPosCutoff bounds the positive series region: above it the ae11
	// Chebyshev fit is valid (its argument mapping covers [10, xMax)).
	chebPosCutoff = 10.0
)

// eˣ range limits.
const (
	// xMaxT is -ln(dblMin): eˣ underflows to 0 not far below -xMaxT.
	xMaxT = 708.39641853226408

	// xMax = xMaxT - ln(xMaxT) is the largest x for which eˣ/x is a normal
	// float64; it is the upper end of the ae11 fit's validity.
	xMax = 701.8334146821
)
