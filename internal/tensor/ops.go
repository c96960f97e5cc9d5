package tensor

// Add performs element-wise addition. Shapes must match.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 5}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// MulScalar multiplies every element by scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// DivScalar divides every element by scalar.
func (t *Tensor[T, B]) DivScalar(scalar float64) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, scalar), t.backend)
}

// Sqrt computes the element-wise square root.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	return New[T, B](t.backend.Sqrt(t.raw), t.backend)
}

// Square computes the element-wise square.
func (t *Tensor[T, B]) Square() *Tensor[T, B] {
	return New[T, B](t.backend.Square(t.raw), t.backend)
}

// Pow raises every element to exponent.
func (t *Tensor[T, B]) Pow(exponent float64) *Tensor[T, B] {
	return New[T, B](t.backend.Pow(t.raw, exponent), t.backend)
}

// EMA returns decay*t + (1-decay)*sample, one exponential moving average step.
func (t *Tensor[T, B]) EMA(sample *Tensor[T, B], decay float64) *Tensor[T, B] {
	return t.MulScalar(decay).Add(sample.MulScalar(1 - decay))
}
