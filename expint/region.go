package expint

// region identifies which approximation applies to an argument. The set is
// closed: the regions are fixed properties of the function, not an
// extension point, so a plain enum consumed by an exhaustive switch replaces
// any strategy-object dispatch.
type region uint8

const (
	// nearZeroNeg: -seriesNegCutoff < x < 0, power series.
	nearZeroNeg region = iota
	// moderateNeg: -AsymptoticThreshold < x <= -seriesNegCutoff, continued
	// fraction.
	moderateNeg
	// largeNeg: x <= -AsymptoticThreshold, asymptotic expansion (underflows
	// to 0 for very negative x).
	largeNeg
	// nearZeroPos: 0 < x <= chebPosCutoff, power series.
	nearZeroPos
	// moderatePos: chebPosCutoff < x <= AsymptoticThreshold, Chebyshev fit.
	moderatePos
	// largePos: x > AsymptoticThreshold, asymptotic expansion (overflows to
	// +Inf once eˣ does).
	largePos
)

func (r region) String() string {
	switch r {
	case nearZeroNeg:
		return "NearZeroNegative"
	case moderateNeg:
		return "ModerateNegative"
	case largeNeg:
		return "LargeNegative"
	case nearZeroPos:
		return "NearZeroPositive"
	case moderatePos:
		return "ModeratePositive"
	case largePos:
		return "LargePositive"
	}
	return "Unknown"
}

// classify maps a finite nonzero argument to its region. It is total over
// that domain and never fails; the dispatcher rejects 0, NaN and ±Inf before
// classifying. cfg must be normalized.
func (cfg Config) classify(x float64) region {
	if x < 0 {
		switch {
		case x <= -cfg.AsymptoticThreshold:
			return largeNeg
		case x <= -seriesNegCutoff:
			return moderateNeg
		default:
			return nearZeroNeg
		}
	}
	switch {
	case x > cfg.AsymptoticThreshold:
		return largePos
	case x > chebPosCutoff:
		return moderatePos
	default:
		return nearZeroPos
	}
}
