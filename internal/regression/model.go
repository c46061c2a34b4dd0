package regression

import (
	"gonum.org/v1/gonum/stat"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
)

// DefaultLR is the learning rate of the SGD optimizer a model falls back
// to when none is given.
const DefaultLR = 0.01

// Config holds model options.
type Config struct {
	HistoryLimit int // Snapshots kept (default: 5000)
}

// StepResult is returned by Model.Step.
type StepResult struct {
	Loss    float64 // MSE measured before the update
	Weights []float64
	Bias    float64
}

// Finite reports whether the loss and the new parameters are all finite.
// Callers stepping in a loop should stop when it returns false.
func (r StepResult) Finite() bool {
	return finite(r.Loss) && finite(r.Bias) && allFinite(r.Weights)
}

// Model is a linear regression model.
//
// Model is not safe for concurrent use; a single caller owns it and
// drives Step.
//
// Example:
//
//	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.1}), regression.Config{})
//	for range 100 {
//	    result := model.Step(batch)
//	    if !result.Finite() {
//	        break
//	    }
//	}
type Model struct {
	params    Params
	optimizer optim.Optimizer
	history   *History
}

// New creates a model with featureCount zero weights and zero bias.
//
// A nil optimizer selects SGD with DefaultLR. New panics if featureCount
// is not positive.
func New(featureCount int, optimizer optim.Optimizer, config Config) *Model {
	if featureCount < 1 {
		panic("regression: feature count must be positive")
	}
	if optimizer == nil {
		optimizer = optim.NewSGD(optim.SGDConfig{LR: DefaultLR})
	}

	return &Model{
		params:    ZeroParams(featureCount),
		optimizer: optimizer,
		history:   NewHistory(config.HistoryLimit),
	}
}

// Predict returns the model output for features.
func (m *Model) Predict(features []float64) float64 {
	return Predict(m.params, features)
}

// ComputeGradients returns the current MSE over batch and its gradient.
func (m *Model) ComputeGradients(batch []dataset.DataPoint) (float64, optim.Gradients) {
	return ComputeGradients(m.params, batch)
}

// Step computes gradients on batch, lets the optimizer update the
// parameters, and records a history snapshot.
//
// Non-finite values are not masked; check StepResult.Finite.
func (m *Model) Step(batch []dataset.DataPoint) StepResult {
	next, loss := Advance(m.params, m.optimizer, batch)
	m.params = next

	m.history.Append(Snapshot{
		Weights: next.Clone().Weights,
		Bias:    next.Bias,
		Loss:    loss,
	})

	return StepResult{
		Loss:    loss,
		Weights: next.Clone().Weights,
		Bias:    next.Bias,
	}
}

// Evaluate returns the MSE over batch without updating anything.
func (m *Model) Evaluate(batch []dataset.DataPoint) float64 {
	return MeanSquaredError(m.params, batch)
}

// Score returns the coefficient of determination R² of the model's
// predictions over the labeled points of batch.
func (m *Model) Score(batch []dataset.DataPoint) float64 {
	var predictions, labels []float64
	for _, p := range batch {
		if !p.HasLabel {
			continue
		}
		predictions = append(predictions, m.Predict(p.Features))
		labels = append(labels, p.Label)
	}
	if len(labels) == 0 {
		return 0
	}
	return stat.RSquaredFrom(predictions, labels, nil)
}

// Reset zeroes the parameters, resets the optimizer and clears history.
func (m *Model) Reset() {
	clear(m.params.Weights)
	m.params.Bias = 0
	m.optimizer.Reset()
	m.history.Clear()
}

// Params returns a copy of the current parameters.
func (m *Model) Params() Params {
	return m.params.Clone()
}

// Weights returns a copy of the current weights.
func (m *Model) Weights() []float64 {
	return m.params.Clone().Weights
}

// Bias returns the current bias.
func (m *Model) Bias() float64 {
	return m.params.Bias
}

// FeatureCount returns the fixed number of weights.
func (m *Model) FeatureCount() int {
	return len(m.params.Weights)
}

// Optimizer returns the optimizer driving the model.
func (m *Model) Optimizer() optim.Optimizer {
	return m.optimizer
}

// History returns a deep copy of the recorded snapshots from oldest to
// newest.
func (m *Model) History() []Snapshot {
	snaps := m.history.Values()
	for i := range snaps {
		snaps[i] = snaps[i].clone()
	}
	return snaps
}
