package tensor

// Backend defines the elementwise compute surface a backend must provide.
//
// Binary operations require operands of identical shape and dtype and
// panic otherwise; there is no broadcasting. Scalar arguments are passed as
// float64 and converted to the tensor's element type by the backend.
//
// Implementations:
//   - cpu.CPUBackend: pure Go kernels on gonum
//   - autodiff.AutodiffBackend: records operations around any other Backend
//   - MockBackend: naive reference used in tests
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise)
	Sqrt(x *RawTensor) *RawTensor
	Square(x *RawTensor) *RawTensor
	Pow(x *RawTensor, exponent float64) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
