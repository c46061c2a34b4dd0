// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package regression

import (
	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
	"github.com/SubhamSaiSamal/FlowLogic/internal/regression"
)

// DataPoint is a feature vector with an optional label.
type DataPoint = dataset.DataPoint

// Model is a linear regression model.
type Model = regression.Model

// Config holds model options.
type Config = regression.Config

// StepResult is returned by Model.Step.
type StepResult = regression.StepResult

// Params is a weight vector and bias.
type Params = regression.Params

// Snapshot is one recorded step.
type Snapshot = regression.Snapshot

// DefaultLR is the learning rate of the fallback SGD optimizer.
const DefaultLR = regression.DefaultLR

// DefaultHistoryLimit is the default number of snapshots kept.
const DefaultHistoryLimit = regression.DefaultHistoryLimit

// New creates a model with featureCount zero weights and zero bias. A nil
// optimizer selects SGD with DefaultLR.
//
// Example:
//
//	model := regression.New(2, optim.NewAdam(optim.AdamConfig{LR: 0.05}), regression.Config{})
func New(featureCount int, optimizer optim.Optimizer, config Config) *Model {
	return regression.New(featureCount, optimizer, config)
}

// ZeroParams returns n zero weights and a zero bias.
func ZeroParams(n int) Params {
	return regression.ZeroParams(n)
}

// Predict returns w·features + b.
func Predict(p Params, features []float64) float64 {
	return regression.Predict(p, features)
}

// ComputeGradients returns the MSE of p over the labeled points of batch
// and its gradient.
func ComputeGradients(p Params, batch []DataPoint) (float64, optim.Gradients) {
	return regression.ComputeGradients(p, batch)
}

// Advance applies one optimizer step to p and returns the new parameters
// with the loss measured before the step. p is not modified.
func Advance(p Params, optimizer optim.Optimizer, batch []DataPoint) (Params, float64) {
	return regression.Advance(p, optimizer, batch)
}
