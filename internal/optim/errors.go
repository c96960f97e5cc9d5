package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/tensor"
)

// Sentinel errors for the optim package.
// Use errors.Is to check: errors.Is(err, optim.ErrShapeMismatch)
var (
	ErrInvalidConfig  = errors.New("ademamix: invalid configuration")
	ErrNoParams       = errors.New("ademamix: empty parameter list")
	ErrDuplicateParam = errors.New("ademamix: parameter appears more than once")
	ErrNilGradient    = errors.New("ademamix: nil gradient")
	ErrShapeMismatch  = errors.New("ademamix: shape mismatch")
	ErrDTypeMismatch  = errors.New("ademamix: dtype mismatch")
	ErrMissingState   = errors.New("ademamix: incomplete state entry")
)

// ConfigError describes a hyperparameter outside its allowed range.
// It unwraps to ErrInvalidConfig.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ademamix: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field string, value any, reason string) error {
	return errors.WithStack(&ConfigError{Field: field, Value: value, Reason: reason})
}

func shapeMismatch(name, what string, got, want tensor.Shape) error {
	return errors.Wrapf(ErrShapeMismatch, "parameter %q: %s shape %v, parameter shape %v", name, what, got, want)
}

func dtypeMismatch(name string, got, want tensor.DataType) error {
	return errors.Wrapf(ErrDTypeMismatch, "parameter %q: got %s, want %s", name, got, want)
}
