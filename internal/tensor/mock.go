package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively in float64 for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.binary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.binary("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.binary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.binary("div", a, b, func(x, y float64) float64 { return x / y })
}

// MulScalar multiplies every element by s.
func (m *MockBackend) MulScalar(x *RawTensor, s float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v * s })
}

// AddScalar adds s to every element.
func (m *MockBackend) AddScalar(x *RawTensor, s float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v + s })
}

// DivScalar divides every element by s.
func (m *MockBackend) DivScalar(x *RawTensor, s float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Sqrt computes the element-wise square root.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Square computes the element-wise square.
func (m *MockBackend) Square(x *RawTensor) *RawTensor {
	return m.unary(x, func(v float64) float64 { return v * v })
}

// Pow raises every element to e.
func (m *MockBackend) Pow(x *RawTensor, e float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return math.Pow(v, e) })
}

func (m *MockBackend) binary(op string, a, b *RawTensor, f func(float64, float64) float64) *RawTensor {
	MustMatch(op, a.Shape(), b.Shape())

	result, err := NewRaw(a.Shape(), a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	out := make([]float64, len(aData))
	for i := range out {
		out[i] = f(aData[i], bData[i])
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) unary(x *RawTensor, f func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = f(v)
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	dst := make([]float64, t.NumElements())
	switch t.DType() {
	case Float32:
		for i, v := range t.AsFloat32() {
			dst[i] = float64(v)
		}
	case Float64:
		copy(dst, t.AsFloat64())
	case Int32:
		for i, v := range t.AsInt32() {
			dst[i] = float64(v)
		}
	case Int64:
		for i, v := range t.AsInt64() {
			dst[i] = float64(v)
		}
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
	return dst
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	}
}
