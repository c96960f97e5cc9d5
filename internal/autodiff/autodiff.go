// Package autodiff implements gradient tracking using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and records every
// elementwise operation on a GradientTape while recording is enabled.
// Optimizer updates run inside NoGrad so parameter arithmetic never lands on
// the tape.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	y := x.Mul(x) // recorded
//
//	restore := autodiff.NoGrad(backend)
//	z := y.AddScalar(1) // not recorded
//	restore()
package autodiff

import (
	"github.com/born-ml/ademamix/internal/tensor"
)

// Verify that AutodiffBackend implements Backend.
var _ tensor.Backend = (*AutodiffBackend[tensor.Backend])(nil)

// AutodiffBackend wraps a Backend and adds operation recording.
type AutodiffBackend[B tensor.Backend] struct {
	inner B             // Wrapped backend (CPU, mock, etc.)
	tape  *GradientTape // Records operations for backpropagation
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

func (b *AutodiffBackend[B]) record(name string, out *tensor.RawTensor, inputs ...*tensor.RawTensor) *tensor.RawTensor {
	b.tape.Record(Operation{Name: name, Inputs: inputs, Output: out})
	return out
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Add", b.inner.Add(x, y), x, y)
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Sub", b.inner.Sub(x, y), x, y)
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Mul", b.inner.Mul(x, y), x, y)
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Div", b.inner.Div(x, y), x, y)
}

// MulScalar multiplies by a scalar and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return b.record("MulScalar", b.inner.MulScalar(x, scalar), x)
}

// AddScalar adds a scalar and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return b.record("AddScalar", b.inner.AddScalar(x, scalar), x)
}

// DivScalar divides by a scalar and records the operation.
func (b *AutodiffBackend[B]) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return b.record("DivScalar", b.inner.DivScalar(x, scalar), x)
}

// Sqrt computes the square root and records the operation.
func (b *AutodiffBackend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Sqrt", b.inner.Sqrt(x), x)
}

// Square computes x*x and records the operation.
func (b *AutodiffBackend[B]) Square(x *tensor.RawTensor) *tensor.RawTensor {
	return b.record("Square", b.inner.Square(x), x)
}

// Pow raises x to exponent and records the operation.
func (b *AutodiffBackend[B]) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return b.record("Pow", b.inner.Pow(x, exponent), x)
}
