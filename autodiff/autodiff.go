// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides operation recording for gradient tracking.
//
// The autodiff backend wraps any backend and records every elementwise
// operation on a gradient tape while recording is on. Optimizers suspend
// recording for their own arithmetic with NoGrad.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ademamix/autodiff"
//	    "github.com/born-ml/ademamix/backend/cpu"
//	    "github.com/born-ml/ademamix/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := x.Add(x)  // Recorded on tape
//
//	    func() {
//	        defer autodiff.NoGrad(backend)()
//	        _ = y.MulScalar(2)  // Not recorded
//	    }()
//	}
package autodiff

import (
	"github.com/born-ml/ademamix/internal/autodiff"
	"github.com/born-ml/ademamix/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Operation is one recorded tape entry.
type Operation = autodiff.Operation

// NoGrad stops recording on b and returns a function that restores the
// previous state. Backends without a tape get a no-op.
//
//	defer autodiff.NoGrad(backend)()
func NoGrad(b any) (restore func()) {
	return autodiff.NoGrad(b)
}

// IsTracking reports whether b is currently recording operations.
func IsTracking(b any) bool {
	return autodiff.IsTracking(b)
}
