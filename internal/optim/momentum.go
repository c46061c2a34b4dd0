package optim

// Momentum implements gradient descent with a velocity term.
//
// Update rule:
//
//	velocity = decay * velocity + lr * gradient
//	param = param - velocity
//
// Momentum helps accelerate descent in consistent directions and dampens
// oscillations. With decay 0 the update is identical to SGD.
//
// Example:
//
//	optimizer := optim.NewMomentum(optim.DefaultMomentumConfig())
type Momentum struct {
	lr    float64
	decay float64

	velocity     []float64 // per-weight velocity, sized on first use
	biasVelocity float64
}

// MomentumConfig holds configuration for the Momentum optimizer.
//
// Decay is used as given, so the zero value disables momentum. Start from
// DefaultMomentumConfig for the conventional 0.9.
type MomentumConfig struct {
	LR    float64 // Learning rate (default: 0.01)
	Decay float64 // Velocity decay factor, range [0, 1)
}

// DefaultMomentumConfig returns LR 0.01 with decay 0.9.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{LR: 0.01, Decay: 0.9}
}

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config MomentumConfig) *Momentum {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &Momentum{
		lr:    config.LR,
		decay: config.Decay,
	}
}

// Step performs a single optimization step.
//
// The velocity buffer is (re)initialized to zeros whenever the number of
// weights differs from the previous step.
func (m *Momentum) Step(weights []float64, bias float64, grads Gradients) ([]float64, float64) {
	m.velocity = resize(m.velocity, len(weights))

	updated := make([]float64, len(weights))
	for i, w := range weights {
		m.velocity[i] = m.decay*m.velocity[i] + m.lr*grads.Weights[i]
		updated[i] = w - m.velocity[i]
	}

	m.biasVelocity = m.decay*m.biasVelocity + m.lr*grads.Bias
	return updated, bias - m.biasVelocity
}

// Reset zeroes the velocity.
func (m *Momentum) Reset() {
	m.velocity = nil
	m.biasVelocity = 0
}

// GetLR returns the current learning rate.
func (m *Momentum) GetLR() float64 {
	return m.lr
}

// SetLR updates the learning rate.
func (m *Momentum) SetLR(lr float64) {
	m.lr = lr
}

// Decay returns the velocity decay factor.
func (m *Momentum) Decay() float64 {
	return m.decay
}
