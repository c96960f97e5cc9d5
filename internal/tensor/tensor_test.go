package tensor

import (
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-12 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if DataTypeOf[float32]() != Float32 {
		t.Error("float32 should map to Float32")
	}
	if DataTypeOf[float64]() != Float64 {
		t.Error("float64 should map to Float64")
	}
	if DataTypeOf[int64]() != Int64 {
		t.Error("int64 should map to Int64")
	}
	if !Float64.IsFloat() || Int32.IsFloat() {
		t.Error("IsFloat classification is wrong")
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("stride[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

func TestMustMatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMatch should panic on differing shapes")
		}
	}()
	MustMatch("add", Shape{2}, Shape{2, 1})
}

// Tensor Tests

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 2}, x.Shape(), "FromSlice shape")
	assertEqualFloat64(t, 3, x.At(1, 0), "At(1, 0)")

	x.Set(9, 0, 1)
	assertEqualFloat64(t, 9, x.Data()[1], "Set(9, 0, 1)")

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}, backend); err == nil {
		t.Error("FromSlice should reject a length mismatch")
	}
}

func TestZerosLikeAndFull(t *testing.T) {
	backend := NewMockBackend()

	full := Full[float32](Shape{3}, 2.5, backend)
	zeros := ZerosLike(full)

	assertEqualShape(t, full.Shape(), zeros.Shape(), "ZerosLike shape")
	for i := range 3 {
		if full.Data()[i] != 2.5 {
			t.Errorf("Full[%d] = %v, want 2.5", i, full.Data()[i])
		}
		if zeros.Data()[i] != 0 {
			t.Errorf("ZerosLike[%d] = %v, want 0", i, zeros.Data()[i])
		}
	}
	if Ones[float64](Shape{}, backend).Item() != 1 {
		t.Error("Ones scalar should hold 1")
	}
}

func TestElementwiseOps(t *testing.T) {
	backend := NewMockBackend()

	a, _ := FromSlice([]float64{1, 4, 9}, Shape{3}, backend)
	b, _ := FromSlice([]float64{2, 2, 3}, Shape{3}, backend)

	tests := []struct {
		name string
		got  *Tensor[float64, *MockBackend]
		want []float64
	}{
		{"Add", a.Add(b), []float64{3, 6, 12}},
		{"Sub", a.Sub(b), []float64{-1, 2, 6}},
		{"Mul", a.Mul(b), []float64{2, 8, 27}},
		{"Div", a.Div(b), []float64{0.5, 2, 3}},
		{"MulScalar", a.MulScalar(2), []float64{2, 8, 18}},
		{"AddScalar", a.AddScalar(-1), []float64{0, 3, 8}},
		{"DivScalar", a.DivScalar(4), []float64{0.25, 1, 2.25}},
		{"Sqrt", a.Sqrt(), []float64{1, 2, 3}},
		{"Square", b.Square(), []float64{4, 4, 9}},
		{"Pow", b.Pow(3), []float64{8, 8, 27}},
		{"EMA", a.EMA(b, 0.75), []float64{1.25, 3.5, 7.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, w := range tt.want {
				assertEqualFloat64(t, w, tt.got.Data()[i], tt.name)
			}
		})
	}

	// Inputs are never modified.
	assertEqualFloat64(t, 1, a.Data()[0], "a unchanged")
}

func TestCloneAndCopyFrom(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2}, Shape{2}, backend)
	y := x.Clone()
	y.Data()[0] = 5
	if x.Data()[0] != 1 {
		t.Error("Clone should not share memory")
	}

	if err := x.CopyFrom(y); err != nil {
		t.Fatalf("CopyFrom failed: %v", err)
	}
	if x.Data()[0] != 5 {
		t.Errorf("CopyFrom: got %v, want 5", x.Data()[0])
	}
}
