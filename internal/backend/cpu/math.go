package cpu

import (
	"github.com/born-ml/ademamix/internal/tensor"
)

// Sqrt computes element-wise square root.
// Negative inputs yield NaN; nothing is clamped.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sqrt", x, sqrtFloat32, sqrtFloat64)
}

// Square computes element-wise x*x.
func (cpu *CPUBackend) Square(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("square", x,
		func(dst, src []float32) { mulFloat32(dst, src, src) },
		func(dst, src []float64) { mulFloat64(dst, src, src) },
	)
}

// Pow raises each element to the given exponent.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return cpu.unary("pow", x,
		func(dst, src []float32) { powFloat32(dst, src, float32(exponent)) },
		func(dst, src []float64) { powFloat64(dst, src, exponent) },
	)
}
