// Package regression implements a linear regression model trained by a
// pluggable optimizer on mean squared error.
//
// The arithmetic lives in pure functions over an explicit Params value
// (Predict, ComputeGradients, Advance). Model wraps them with the
// optimizer, a bounded history and reset semantics for callers that step
// it from a UI loop.
package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
)

// Params is the trainable state of a linear model.
type Params struct {
	Weights []float64
	Bias    float64
}

// ZeroParams returns all-zero parameters for featureCount features.
func ZeroParams(featureCount int) Params {
	return Params{Weights: make([]float64, featureCount)}
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	w := make([]float64, len(p.Weights))
	copy(w, p.Weights)
	return Params{Weights: w, Bias: p.Bias}
}

// Finite reports whether every weight and the bias are finite.
func (p Params) Finite() bool {
	return finite(p.Bias) && allFinite(p.Weights)
}

// Predict returns features·weights + bias.
//
// len(features) must equal len(p.Weights).
func Predict(p Params, features []float64) float64 {
	return floats.Dot(features, p.Weights) + p.Bias
}

// ComputeGradients returns the mean squared error of p over the labeled
// points of batch and its gradient:
//
//	error = predict(features) - label
//	loss  = Σ error² / n
//	dw[i] = Σ (2/n) * error * features[i]
//	db    = Σ (2/n) * error
//
// n counts labeled points only; unlabeled points contribute nothing. A
// batch without labeled points yields zero loss and zero gradients.
func ComputeGradients(p Params, batch []dataset.DataPoint) (float64, optim.Gradients) {
	grads := optim.Gradients{Weights: make([]float64, len(p.Weights))}

	n := 0
	for _, point := range batch {
		if point.HasLabel {
			n++
		}
	}
	if n == 0 {
		return 0, grads
	}

	scale := 2 / float64(n)
	var totalSquaredError float64
	for _, point := range batch {
		if !point.HasLabel {
			continue
		}
		err := Predict(p, point.Features) - point.Label
		totalSquaredError += err * err

		floats.AddScaled(grads.Weights, scale*err, point.Features)
		grads.Bias += scale * err
	}

	return totalSquaredError / float64(n), grads
}

// Advance performs one optimizer step from p on batch and returns the new
// parameters together with the loss measured at p. p is not modified.
func Advance(p Params, optimizer optim.Optimizer, batch []dataset.DataPoint) (Params, float64) {
	loss, grads := ComputeGradients(p, batch)
	weights, bias := optimizer.Step(p.Weights, p.Bias, grads)
	return Params{Weights: weights, Bias: bias}, loss
}

// MeanSquaredError returns the MSE of p over the labeled points of batch,
// or 0 when there are none.
func MeanSquaredError(p Params, batch []dataset.DataPoint) float64 {
	loss, _ := ComputeGradients(p, batch)
	return loss
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !finite(v) {
			return false
		}
	}
	return true
}
