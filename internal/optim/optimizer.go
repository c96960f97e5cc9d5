// Package optim implements the AdEMAMix optimizer.
//
// AdEMAMix extends Adam with a second, slow exponential moving average of
// gradients. The update mixes the bias-corrected fast EMA with the slow EMA,
// scaled by alpha, and normalizes by the second-moment estimate:
//
//	m1 = beta1 * m1 + (1-beta1) * g
//	m2 = beta3 * m2 + (1-beta3) * g
//	nu = beta2 * nu + (1-beta2) * g²
//	u  = (m1 / (1-beta1^t) + alpha * m2) / (sqrt(nu) / sqrt(1-beta2^t) + eps)
//	p  = p - lr * (u + weight_decay * p)
//
// alpha and beta3 can be warmed up linearly over TAlpha and TBeta3 steps.
//
// Reference: "The AdEMAMix Optimizer: Better, Faster, Older" (Pagliardini et al., 2024)
//
// Example usage:
//
//	cfg := optim.DefaultConfig()
//	cfg.LR = 1e-3
//	optimizer, err := optim.NewAdEMAMix(params, cfg, backend)
//	if err != nil {
//	    return err
//	}
//
//	for step := range steps {
//	    // an external backward pass attaches gradients to params
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ademamix/internal/nn"
	"github.com/born-ml/ademamix/internal/tensor"
)

// Optimizer is the base interface for optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient
	// attached. Parameters without a gradient are left untouched.
	Step() error

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// gradientSource returns the gradient to use for a parameter, or nil to skip it.
type gradientSource[T tensor.Float, B tensor.Backend] func(p *nn.Parameter[T, B]) (*tensor.Tensor[T, B], error)

// attachedGradient reads the gradient stored on the parameter itself.
func attachedGradient[T tensor.Float, B tensor.Backend](p *nn.Parameter[T, B]) (*tensor.Tensor[T, B], error) {
	return p.Grad(), nil
}

// mappedGradient looks gradients up in a RawTensor -> gradient map, the form
// produced by a tape backward pass.
//
// Returns nil if no gradient is found (parameter wasn't part of computation graph).
// A key mapped to a nil tensor is an error.
func mappedGradient[T tensor.Float, B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, backend B) gradientSource[T, B] {
	return func(p *nn.Parameter[T, B]) (*tensor.Tensor[T, B], error) {
		raw, ok := grads[p.Tensor().Raw()]
		if !ok {
			return nil, nil
		}
		if raw == nil {
			return nil, errors.Wrapf(ErrNilGradient, "parameter %q", p.Name())
		}
		if raw.DType() != tensor.DataTypeOf[T]() {
			return nil, dtypeMismatch(p.Name(), raw.DType(), tensor.DataTypeOf[T]())
		}
		return tensor.New[T](raw, backend), nil
	}
}
