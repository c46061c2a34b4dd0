// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based update rules for linear models.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient step
//   - Momentum: gradient step with a decaying velocity
//   - RMSProp: step scaled by a running RMS of gradients
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/SubhamSaiSamal/FlowLogic/optim"
//	    "github.com/SubhamSaiSamal/FlowLogic/regression"
//	)
//
//	func main() {
//	    model := regression.New(1, optim.NewAdam(optim.AdamConfig{LR: 0.05}), regression.Config{})
//
//	    for range 500 {
//	        result := model.Step(batch)
//	        if !result.Finite() {
//	            break
//	        }
//	    }
//	}
//
// # Optimizers
//
// SGD:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
// Momentum:
//
//	optimizer := optim.NewMomentum(optim.DefaultMomentumConfig())
//
// Adam:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
//
// # State
//
// Optimizers own their accumulators. Step returns fresh parameter slices
// and never writes to its inputs; Reset returns an optimizer to its
// just-constructed state.
package optim
