// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 kernels on gonum blas32 and math32
//   - Float64 kernels on gonum floats
//   - Large tensors split across goroutines
//
// Shapes must match exactly. Mismatched operands panic instead of
// broadcasting.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ademamix/backend/cpu"
//	    "github.com/born-ml/ademamix/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
