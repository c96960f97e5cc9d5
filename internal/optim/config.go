package optim

import "math"

// MixingMode selects how the slow EMA enters the update direction.
type MixingMode string

const (
	// MixScaled computes (m1/bc1 + alpha*m2) / denom, the published AdEMAMix rule.
	MixScaled MixingMode = "scaled"

	// MixAdditive computes (m1/bc1 + alpha + m2) / denom. It exists only to
	// compare against the original reference skeleton, which adds alpha as a
	// bare scalar.
	MixAdditive MixingMode = "additive"
)

// ScheduleShape selects the warmup curve of the slow EMA decay.
type ScheduleShape string

const (
	// LinearSchedule interpolates beta3 linearly in the step.
	LinearSchedule ScheduleShape = "linear"

	// HalfLifeSchedule interpolates the half-life of beta3 linearly, which
	// is the warmup used in the AdEMAMix paper.
	HalfLifeSchedule ScheduleShape = "half-life"
)

// Config holds the AdEMAMix hyperparameters.
//
// Zero values are not replaced with defaults. Start from DefaultConfig and
// override the fields you need.
type Config struct {
	LR          float64    `yaml:"lr"`           // Learning rate (default: 1e-3)
	Betas       [3]float64 `yaml:"betas"`        // beta1, beta2, beta3 final (default: [0.9, 0.999, 0.9999])
	Alpha       float64    `yaml:"alpha"`        // Final slow-EMA weight (default: 5.0)
	TAlpha      int        `yaml:"t_alpha"`      // Alpha warmup steps, 0 disables (default: 0)
	TBeta3      int        `yaml:"t_beta3"`      // Beta3 warmup steps, 0 disables (default: 0)
	Eps         float64    `yaml:"eps"`          // Denominator term for numerical stability (default: 1e-8)
	WeightDecay float64    `yaml:"weight_decay"` // Coupled L2 penalty (default: 0)

	Mixing        MixingMode    `yaml:"mixing,omitempty"`         // Empty means MixScaled
	Beta3Schedule ScheduleShape `yaml:"beta3_schedule,omitempty"` // Empty means LinearSchedule
}

// DefaultConfig returns the standard AdEMAMix hyperparameters.
func DefaultConfig() Config {
	return Config{
		LR:            1e-3,
		Betas:         [3]float64{0.9, 0.999, 0.9999},
		Alpha:         5.0,
		Eps:           1e-8,
		Mixing:        MixScaled,
		Beta3Schedule: LinearSchedule,
	}
}

// Beta1 returns the fast EMA decay.
func (c Config) Beta1() float64 { return c.Betas[0] }

// Beta2 returns the second-moment decay.
func (c Config) Beta2() float64 { return c.Betas[1] }

// Beta3 returns the final slow EMA decay.
func (c Config) Beta3() float64 { return c.Betas[2] }

// Validate reports the first hyperparameter outside its allowed range.
// The returned error wraps a *ConfigError and matches ErrInvalidConfig.
func (c Config) Validate() error {
	if !isFinite(c.LR) || c.LR <= 0 {
		return invalid("lr", c.LR, "must be finite and > 0")
	}
	for i, name := range [...]string{"beta1", "beta2", "beta3"} {
		if b := c.Betas[i]; !(b >= 0 && b < 1) {
			return invalid(name, b, "must be in [0, 1)")
		}
	}
	if !isFinite(c.Alpha) || c.Alpha < 0 {
		return invalid("alpha", c.Alpha, "must be finite and >= 0")
	}
	if c.TAlpha < 0 {
		return invalid("t_alpha", c.TAlpha, "must be >= 0")
	}
	if c.TBeta3 < 0 {
		return invalid("t_beta3", c.TBeta3, "must be >= 0")
	}
	if !isFinite(c.Eps) || c.Eps <= 0 {
		return invalid("eps", c.Eps, "must be finite and > 0")
	}
	if !isFinite(c.WeightDecay) || c.WeightDecay < 0 {
		return invalid("weight_decay", c.WeightDecay, "must be finite and >= 0")
	}
	switch c.Mixing {
	case "", MixScaled, MixAdditive:
	default:
		return invalid("mixing", c.Mixing, "must be scaled or additive")
	}
	switch c.Beta3Schedule {
	case "", LinearSchedule, HalfLifeSchedule:
	default:
		return invalid("beta3_schedule", c.Beta3Schedule, "must be linear or half-life")
	}
	return nil
}

func (c Config) mixing() MixingMode {
	if c.Mixing == "" {
		return MixScaled
	}
	return c.Mixing
}

func (c Config) beta3Shape() ScheduleShape {
	if c.Beta3Schedule == "" {
		return LinearSchedule
	}
	return c.Beta3Schedule
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
