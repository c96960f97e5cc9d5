// Package nn holds trainable parameters.
package nn

import (
	"github.com/google/uuid"

	"github.com/born-ml/ademamix/internal/tensor"
)

// ParamID is a stable identity for a Parameter, independent of its tensor
// memory. Optimizer state is keyed by ParamID.
type ParamID = uuid.UUID

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors updated in place by an optimizer. The gradient is
// attached by an external differentiation pass and read by the optimizer.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad()
type Parameter[T tensor.Float, B tensor.Backend] struct {
	id     ParamID
	name   string            // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[T, B]
	grad   *tensor.Tensor[T, B] // nil until a backward pass attaches one
}

// NewParameter creates a new trainable parameter with a fresh random ID.
//
// Parameters:
//   - name: Descriptive name for this parameter (e.g., "linear1.weight")
//   - tensor: The initialized parameter tensor
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return NewParameterWithID(uuid.New(), name, t)
}

// NewParameterWithID creates a parameter with a caller-chosen identity,
// for hosts that restore parameters across process restarts.
func NewParameterWithID[T tensor.Float, B tensor.Backend](id ParamID, name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		id:     id,
		name:   name,
		tensor: t,
	}
}

// ID returns the parameter's stable identity.
func (p *Parameter[T, B]) ID() ParamID {
	return p.id
}

// Name returns the parameter name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter[T, B]) Grad() *tensor.Tensor[T, B] {
	return p.grad
}

// SetGrad attaches a gradient tensor.
func (p *Parameter[T, B]) SetGrad(grad *tensor.Tensor[T, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter[T, B]) ZeroGrad() {
	p.grad = nil
}
