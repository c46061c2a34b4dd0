// Package optim implements gradient-based update rules for small parameter vectors.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain gradient step
//   - Momentum: gradient step with a decaying velocity
//   - RMSProp: step scaled by a running average of squared gradients
//   - Adam: Adaptive Moment Estimation
//
// Optimizers consume the current weights, bias and gradients and return
// fresh parameters. The input slices are never modified; only the
// optimizer's own accumulators carry state from one step to the next.
//
// Example usage:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//
//	for range iterations {
//	    loss, grads := model.ComputeGradients(batch)
//	    weights, bias = optimizer.Step(weights, bias, grads)
//	}
package optim

// Gradients holds the partial derivatives of the loss with respect to
// each weight and to the bias.
type Gradients struct {
	Weights []float64
	Bias    float64
}

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Compute updated parameters from gradients
//   - Reset: Clear internal accumulators
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step returns the parameters after one update.
	//
	// len(grads.Weights) must equal len(weights). The returned slice is
	// newly allocated.
	Step(weights []float64, bias float64, grads Gradients) ([]float64, float64)

	// Reset clears velocities, moments and step counters.
	//
	// After Reset the optimizer behaves exactly like a freshly
	// constructed one with the same configuration.
	Reset()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// resize returns buf when it already holds n values, otherwise a zeroed
// slice of length n.
func resize(buf []float64, n int) []float64 {
	if len(buf) == n {
		return buf
	}
	return make([]float64, n)
}
