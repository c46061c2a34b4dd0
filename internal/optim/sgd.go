package optim

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// SGD keeps no state between steps, so Reset is a no-op.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	weights, bias = optimizer.Step(weights, bias, grads)
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{lr: config.LR}
}

// Step performs a single optimization step.
func (s *SGD) Step(weights []float64, bias float64, grads Gradients) ([]float64, float64) {
	updated := make([]float64, len(weights))
	for i, w := range weights {
		updated[i] = w - s.lr*grads.Weights[i]
	}
	return updated, bias - s.lr*grads.Bias
}

// Reset is a no-op for SGD.
func (s *SGD) Reset() {}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
