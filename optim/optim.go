// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/optim"
	"github.com/born-ml/ademamix/internal/tensor"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config holds the AdEMAMix hyperparameters.
type Config = optim.Config

// MixingMode selects how the slow EMA enters the update.
type MixingMode = optim.MixingMode

// Mixing modes.
const (
	MixScaled   = optim.MixScaled
	MixAdditive = optim.MixAdditive
)

// ScheduleShape selects the beta3 warmup curve.
type ScheduleShape = optim.ScheduleShape

// Schedule shapes.
const (
	LinearSchedule   = optim.LinearSchedule
	HalfLifeSchedule = optim.HalfLifeSchedule
)

// ConfigError describes an out-of-range hyperparameter.
type ConfigError = optim.ConfigError

// Errors returned by the optimizer. Use errors.Is to check.
var (
	ErrInvalidConfig  = optim.ErrInvalidConfig
	ErrNoParams       = optim.ErrNoParams
	ErrDuplicateParam = optim.ErrDuplicateParam
	ErrNilGradient    = optim.ErrNilGradient
	ErrShapeMismatch  = optim.ErrShapeMismatch
	ErrDTypeMismatch  = optim.ErrDTypeMismatch
	ErrMissingState   = optim.ErrMissingState
)

// DefaultConfig returns the standard AdEMAMix hyperparameters.
func DefaultConfig() Config {
	return optim.DefaultConfig()
}

// AdEMAMix represents the AdEMAMix optimizer.
type AdEMAMix[T tensor.Float, B tensor.Backend] = optim.AdEMAMix[T, B]

// ParamGroup is a set of parameters sharing one configuration.
type ParamGroup[T tensor.Float, B tensor.Backend] = optim.ParamGroup[T, B]

// ParameterState is the per-parameter optimizer state.
type ParameterState[T tensor.Float, B tensor.Backend] = optim.ParameterState[T, B]

// NewAdEMAMix creates a new AdEMAMix optimizer.
//
// Example:
//
//	backend := cpu.New()
//	cfg := optim.DefaultConfig()
//	cfg.TAlpha, cfg.TBeta3 = 10_000, 10_000
//	optimizer, err := optim.NewAdEMAMix(params, cfg, backend)
func NewAdEMAMix[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], cfg Config, backend B) (*AdEMAMix[T, B], error) {
	return optim.NewAdEMAMix(params, cfg, backend)
}

// NewAdEMAMixGroups creates an optimizer over several parameter groups.
func NewAdEMAMixGroups[T tensor.Float, B tensor.Backend](groups []ParamGroup[T, B], defaults Config, backend B) (*AdEMAMix[T, B], error) {
	return optim.NewAdEMAMixGroups(groups, defaults, backend)
}

// MustNewAdEMAMix is like NewAdEMAMix but panics on error.
func MustNewAdEMAMix[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], cfg Config, backend B) *AdEMAMix[T, B] {
	return optim.MustNewAdEMAMix(params, cfg, backend)
}

// AlphaScheduler returns the slow-EMA weight at step.
func AlphaScheduler(step int, start, end float64, t int) float64 {
	return optim.AlphaScheduler(step, start, end, t)
}

// Beta3Scheduler returns the slow EMA decay at step.
func Beta3Scheduler(step int, start, end float64, t int) float64 {
	return optim.Beta3Scheduler(step, start, end, t)
}

// Beta3SchedulerShaped returns the slow EMA decay at step for the given ramp shape.
func Beta3SchedulerShaped(shape ScheduleShape, step int, start, end float64, t int) float64 {
	return optim.Beta3SchedulerShaped(shape, step, start, end, t)
}

// StateMap holds per-parameter optimizer state keyed by parameter ID.
type StateMap[T tensor.Float, B tensor.Backend] = optim.StateMap[T, B]

// NewStateMap creates an empty state map whose tensors live on backend.
func NewStateMap[T tensor.Float, B tensor.Backend](backend B) *StateMap[T, B] {
	return optim.NewStateMap[T](backend)
}
