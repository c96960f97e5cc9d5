// Package cpu implements the CPU backend on gonum vector kernels.
package cpu

import (
	"fmt"

	"github.com/born-ml/ademamix/internal/parallel"
	"github.com/born-ml/ademamix/internal/tensor"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements elementwise tensor operations on CPU.
//
// Float64 kernels use gonum/floats, float32 kernels use gonum/blas/blas32
// and chewxy/math32. Large tensors are split across goroutines.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, addFloat32, addFloat64)
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, subFloat32, subFloat64)
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, mulFloat32, mulFloat64)
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, divFloat32, divFloat64)
}

type (
	binaryFloat32 func(dst, a, b []float32)
	binaryFloat64 func(dst, a, b []float64)
)

func (cpu *CPUBackend) binary(op string, a, b *tensor.RawTensor, f32 binaryFloat32, f64 binaryFloat64) *tensor.RawTensor {
	tensor.MustMatch(op, a.Shape(), b.Shape())
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}

	result := cpu.alloc(op, a)

	switch a.DType() {
	case tensor.Float32:
		dst, x, y := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		parallel.Range(len(dst), func(s, e int) {
			f32(dst[s:e], x[s:e], y[s:e])
		}, cpu.parallel)
	case tensor.Float64:
		dst, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		parallel.Range(len(dst), func(s, e int) {
			f64(dst[s:e], x[s:e], y[s:e])
		}, cpu.parallel)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, a.DType()))
	}

	return result
}

func (cpu *CPUBackend) alloc(op string, like *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(like.Shape(), like.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
