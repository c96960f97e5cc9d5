// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides trainable parameters for the optimizers in optim.
package nn

import (
	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/tensor"
)

// ParamID is the stable identity of a Parameter. Optimizer state is keyed by it.
type ParamID = nn.ParamID

// Parameter represents a trainable parameter.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Access the tensor
//	w := weight.Tensor()
//
//	// Attach the gradient from a backward pass
//	weight.SetGrad(grad)
//
// Methods:
//
//	ID() ParamID
//	    Returns the parameter identity.
//
//	Name() string
//	    Returns the parameter name (e.g., "weight", "bias").
//
//	Tensor() *tensor.Tensor[T, B]
//	    Returns the parameter tensor.
//
//	Grad() *tensor.Tensor[T, B]
//	    Returns the gradient tensor (nil if not computed yet).
//
//	SetGrad(grad *tensor.Tensor[T, B])
//	    Sets the gradient tensor.
//
//	ZeroGrad()
//	    Clears the gradient tensor.
type Parameter[T tensor.Float, B tensor.Backend] = nn.Parameter[T, B]

// NewParameter creates a parameter with a fresh random ID.
func NewParameter[T tensor.Float, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter(name, t)
}

// NewParameterWithID creates a parameter with a caller-chosen ID.
func NewParameterWithID[T tensor.Float, B tensor.Backend](id ParamID, name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameterWithID(id, name, t)
}
