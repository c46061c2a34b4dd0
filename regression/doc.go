// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package regression provides linear regression trained one optimizer
// step at a time.
//
// # Overview
//
// A Model holds a weight per feature, a bias and an optimizer. Each call
// to Step computes the mean squared error over the labeled points of a
// batch, lets the optimizer update the parameters and records a snapshot.
// Unlabeled points are ignored by training.
//
// # Basic Usage
//
//	batch := []regression.DataPoint{
//	    dataset.Labeled(0, []float64{1}, 3),
//	    dataset.Labeled(1, []float64{2}, 5),
//	}
//	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.1}), regression.Config{})
//
//	result := model.Step(batch)
//	fmt.Println(result.Loss, result.Weights, result.Bias) // 17 [1.3] 0.8
//
// # Divergence
//
// Numeric problems are not errors. A learning rate that is too large
// produces infinite or NaN values which flow through unchanged; check
// StepResult.Finite and stop stepping when it returns false.
//
// # Pure Helpers
//
// Predict, ComputeGradients and Advance operate on explicit Params and do
// not touch any Model, for callers that keep parameters themselves.
package regression
