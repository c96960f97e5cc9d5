package cpu

import (
	"fmt"

	"github.com/born-ml/ademamix/internal/parallel"
	"github.com/born-ml/ademamix/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("mulScalar", x,
		func(dst, src []float32) { scaleFloat32(dst, src, float32(scalar)) },
		func(dst, src []float64) { scaleFloat64(dst, src, scalar) },
	)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("addScalar", x,
		func(dst, src []float32) { addConstFloat32(dst, src, float32(scalar)) },
		func(dst, src []float64) { addConstFloat64(dst, src, scalar) },
	)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unary("divScalar", x,
		func(dst, src []float32) { divConstFloat32(dst, src, float32(scalar)) },
		func(dst, src []float64) { divConstFloat64(dst, src, scalar) },
	)
}

type (
	unaryFloat32 func(dst, src []float32)
	unaryFloat64 func(dst, src []float64)
)

func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, f32 unaryFloat32, f64 unaryFloat64) *tensor.RawTensor {
	result := cpu.alloc(op, x)

	switch x.DType() {
	case tensor.Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		parallel.Range(len(dst), func(s, e int) {
			f32(dst[s:e], src[s:e])
		}, cpu.parallel)
	case tensor.Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		parallel.Range(len(dst), func(s, e int) {
			f64(dst[s:e], src[s:e])
		}, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, x.DType()))
	}

	return result
}
