package expint

// Default tuning values. The iteration cap is double the usual continued-
// fraction budget because the E1 fraction needs roughly 85 convergents for
// full precision at the |x| = 1 seam.
const (
	defaultEpsilon             = 1e-17
	defaultMaxIterations       = 200
	defaultAsymptoticThreshold = 40.0
)

// Config carries the tunable evaluation parameters. It is an immutable value
// passed explicitly to each call; there is no package-level mutable state. A
// zero field selects its default, so the zero Config behaves exactly like
// DefaultConfig().
type Config struct {
	// Epsilon is the relative stopping tolerance for the series and
	// continued-fraction evaluators. The asymptotic evaluator ignores it
	// past the point of optimal truncation.
	Epsilon float64

	// MaxIterations caps the number of series terms or continued-fraction
	// convergents. Hitting the cap before Epsilon is met marks the result
	// Degraded; it is not an error.
	MaxIterations int

	// AsymptoticThreshold is the |x| at which evaluation switches to the
	// asymptotic expansion. Values much below 30 trade accuracy away: the
	// expansion's smallest term shrinks like e^-|x|.
	AsymptoticThreshold float64
}

// DefaultConfig returns the tuning used by the package-level entry points.
func DefaultConfig() Config {
	return Config{
		Epsilon:             defaultEpsilon,
		MaxIterations:       defaultMaxIterations,
		AsymptoticThreshold: defaultAsymptoticThreshold,
	}
}

// normalized replaces zero or negative fields with their defaults.
func (cfg Config) normalized() Config {
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = defaultEpsilon
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.AsymptoticThreshold <= 0 {
		cfg.AsymptoticThreshold = defaultAsymptoticThreshold
	}
	return cfg
}
