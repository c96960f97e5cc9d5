// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the AdEMAMix optimizer.
//
// # Overview
//
// AdEMAMix keeps two gradient EMAs per parameter. The fast one (beta1)
// reacts to recent gradients like Adam's first moment. The slow one (beta3)
// remembers gradients over tens of thousands of steps and is mixed into the
// update with weight alpha. Both alpha and beta3 can be warmed up over
// TAlpha and TBeta3 steps.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ademamix/backend/cpu"
//	    "github.com/born-ml/ademamix/nn"
//	    "github.com/born-ml/ademamix/optim"
//	    "github.com/born-ml/ademamix/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    w, _ := tensor.FromSlice([]float32{0.5, -0.5}, tensor.Shape{2}, backend)
//	    params := []*nn.Parameter[float32, *cpu.Backend]{nn.NewParameter("w", w)}
//
//	    optimizer, err := optim.NewAdEMAMix(params, optim.DefaultConfig(), backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for step := range 1000 {
//	        // 1. Attach gradients
//	        params[0].SetGrad(gradientOf(w))
//
//	        // 2. Update parameters
//	        if err := optimizer.Step(); err != nil {
//	            log.Fatal(err)
//	        }
//
//	        // 3. Zero gradients
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Parameter Groups
//
// Groups override the configuration for a subset of parameters:
//
//	noDecay := optim.DefaultConfig()
//	decay := noDecay
//	decay.WeightDecay = 0.01
//
//	optimizer, err := optim.NewAdEMAMixGroups(
//	    []optim.ParamGroup[float32, *cpu.Backend]{
//	        {Params: weights, Config: &decay},
//	        {Params: biases},
//	    },
//	    noDecay,
//	    backend,
//	)
//
// # State
//
// StateDict and LoadStateDict copy the per-parameter state in and out as
// RawTensors. Writing them to disk is left to the caller.
package optim
