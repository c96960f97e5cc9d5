package cpu

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas/blas32"
)

// Float32 kernels. dst never aliases a or b except where noted.

func vec32(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Data: x, Inc: 1}
}

func addFloat32(dst, a, b []float32) {
	blas32.Copy(vec32(a), vec32(dst))
	blas32.Axpy(1, vec32(b), vec32(dst))
}

func subFloat32(dst, a, b []float32) {
	blas32.Copy(vec32(a), vec32(dst))
	blas32.Axpy(-1, vec32(b), vec32(dst))
}

// mulFloat32 allows a and b to be the same slice (used by Square).
func mulFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func scaleFloat32(dst, src []float32, c float32) {
	blas32.Copy(vec32(src), vec32(dst))
	blas32.Scal(c, vec32(dst))
}

func addConstFloat32(dst, src []float32, c float32) {
	for i := range dst {
		dst[i] = src[i] + c
	}
}

func divConstFloat32(dst, src []float32, c float32) {
	for i := range dst {
		dst[i] = src[i] / c
	}
}

func sqrtFloat32(dst, src []float32) {
	for i := range dst {
		dst[i] = math32.Sqrt(src[i])
	}
}

func powFloat32(dst, src []float32, e float32) {
	for i := range dst {
		dst[i] = math32.Pow(src[i], e)
	}
}
