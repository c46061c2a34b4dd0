package optim

import (
	"math"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.05,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int // Timestep for bias correction

	m     []float64 // First moment estimates
	v     []float64 // Second moment estimates
	mBias float64
	vBias float64
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single optimization step using Adam algorithm.
//
//  1. Increment the timestep
//  2. Update biased first and second moment estimates
//  3. Compute bias-corrected moment estimates
//  4. Update parameters
func (a *Adam) Step(weights []float64, bias float64, grads Gradients) ([]float64, float64) {
	a.t++

	// bias_correction1 = 1 - beta1^t
	// bias_correction2 = 1 - beta2^t
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	if len(a.m) != len(weights) {
		a.m = make([]float64, len(weights))
		a.v = make([]float64, len(weights))
	}

	updated := make([]float64, len(weights))
	for i, w := range weights {
		var delta float64
		a.m[i], a.v[i], delta = a.moments(a.m[i], a.v[i], grads.Weights[i], biasCorrection1, biasCorrection2)
		updated[i] = w - delta
	}

	var delta float64
	a.mBias, a.vBias, delta = a.moments(a.mBias, a.vBias, grads.Bias, biasCorrection1, biasCorrection2)

	return updated, bias - delta
}

// moments advances one (m, v) pair and returns the parameter delta.
func (a *Adam) moments(m, v, g, biasCorrection1, biasCorrection2 float64) (float64, float64, float64) {
	m = a.beta1*m + (1.0-a.beta1)*g
	v = a.beta2*v + (1.0-a.beta2)*g*g

	mHat := m / biasCorrection1
	vHat := v / biasCorrection2

	return m, v, a.lr * mHat / (math.Sqrt(vHat) + a.eps)
}

// Reset clears both moment estimates and the timestep.
func (a *Adam) Reset() {
	a.t = 0
	a.m = nil
	a.v = nil
	a.mBias = 0
	a.vBias = 0
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the current timestep.
//
// Useful for monitoring optimizer state.
func (a *Adam) GetTimestep() int {
	return a.t
}
