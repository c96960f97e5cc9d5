// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ademamix/internal/backend/cpu"
	"github.com/born-ml/ademamix/internal/parallel"
	"github.com/born-ml/ademamix/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the elementwise tensor
// operations, built on gonum kernels.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// ParallelConfig controls how large tensors are split across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns the parallelism settings used by New.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ademamix/backend/cpu"
//	    "github.com/born-ml/ademamix/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}
