package optim

import "math"

// RMSProp divides each step by a running root mean square of recent
// gradients.
//
// Update rule:
//
//	sq = alpha * sq + (1-alpha) * gradient²
//	param = param - lr * gradient / (sqrt(sq) + eps)
type RMSProp struct {
	lr    float64
	alpha float64
	eps   float64

	sq     []float64
	sqBias float64
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR    float64 // Learning rate (default: 0.01)
	Alpha float64 // Smoothing constant (default: 0.99)
	Eps   float64 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(config RMSPropConfig) *RMSProp {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &RMSProp{
		lr:    config.LR,
		alpha: config.Alpha,
		eps:   config.Eps,
	}
}

// Step performs a single optimization step.
func (r *RMSProp) Step(weights []float64, bias float64, grads Gradients) ([]float64, float64) {
	r.sq = resize(r.sq, len(weights))

	updated := make([]float64, len(weights))
	for i, w := range weights {
		g := grads.Weights[i]
		r.sq[i] = r.alpha*r.sq[i] + (1-r.alpha)*g*g
		updated[i] = w - r.lr*g/(math.Sqrt(r.sq[i])+r.eps)
	}

	g := grads.Bias
	r.sqBias = r.alpha*r.sqBias + (1-r.alpha)*g*g
	return updated, bias - r.lr*g/(math.Sqrt(r.sqBias)+r.eps)
}

// Reset clears the squared-gradient averages.
func (r *RMSProp) Reset() {
	r.sq = nil
	r.sqBias = 0
}

// GetLR returns the current learning rate.
func (r *RMSProp) GetLR() float64 {
	return r.lr
}

// SetLR updates the learning rate.
func (r *RMSProp) SetLR(lr float64) {
	r.lr = lr
}
