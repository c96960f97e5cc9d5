package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Float64 kernels. Lengths are guaranteed equal by the callers.

func addFloat64(dst, a, b []float64) { floats.AddTo(dst, a, b) }

func subFloat64(dst, a, b []float64) { floats.SubTo(dst, a, b) }

func mulFloat64(dst, a, b []float64) { floats.MulTo(dst, a, b) }

func divFloat64(dst, a, b []float64) { floats.DivTo(dst, a, b) }

func scaleFloat64(dst, src []float64, c float64) { floats.ScaleTo(dst, c, src) }

func addConstFloat64(dst, src []float64, c float64) {
	copy(dst, src)
	floats.AddConst(c, dst)
}

// divConstFloat64 divides instead of scaling by 1/c so results stay exact.
func divConstFloat64(dst, src []float64, c float64) {
	for i := range dst {
		dst[i] = src[i] / c
	}
}

func sqrtFloat64(dst, src []float64) {
	for i := range dst {
		dst[i] = math.Sqrt(src[i])
	}
}

func powFloat64(dst, src []float64, e float64) {
	for i := range dst {
		dst[i] = math.Pow(src[i], e)
	}
}
