package calculus

import (
	"math"

	"github.com/SubhamSaiSamal/FlowLogic/internal/ring"
)

// Status is the state of a descent session.
type Status string

// Session states. Every state but StatusRunning is final.
const (
	StatusRunning   Status = "running"
	StatusConverged Status = "converged"
	StatusDiverged  Status = "diverged"
	StatusStopped   Status = "stopped"
)

// Done reports whether s is a final state.
func (s Status) Done() bool {
	return s != StatusRunning
}

// DescentConfig configures a one-dimensional gradient descent session.
type DescentConfig struct {
	LR            float64 // Learning rate (default: 0.1)
	Start         float64 // Starting x, used as given
	Threshold     float64 // Converged once |f'(x)| falls below it (default: 0.01)
	MaxIterations int     // Stop after this many steps (default: 1000)
	Step          float64 // Finite-difference step (default: DefaultStep)
	TrailLimit    int     // Visited points kept (default: 100)
}

// DefaultDescentConfig returns the sandbox defaults, starting at x = 4.
func DefaultDescentConfig() DescentConfig {
	return DescentConfig{
		LR:            0.1,
		Start:         4,
		Threshold:     0.01,
		MaxIterations: 1000,
		Step:          DefaultStep,
		TrailLimit:    100,
	}
}

// Point is a visited (x, f(x)) pair.
type Point struct {
	X float64
	Y float64
}

// DescentStep reports one step of a session.
type DescentStep struct {
	Iteration int
	X         float64 // Position after the step
	Fx        float64 // f(X)
	Gradient  float64 // f' at the position the step started from
	Status    Status
}

// Descent walks x against the numeric derivative of f.
//
// Descent is not safe for concurrent use.
type Descent struct {
	f      Func
	config DescentConfig

	x       float64
	last    DescentStep
	trail   *ring.Buffer[Point]
	best    float64
	hasBest bool
}

// NewDescent creates a session at config.Start. Zero fields other than
// Start take their defaults.
func NewDescent(f Func, config DescentConfig) *Descent {
	def := DefaultDescentConfig()
	if config.LR == 0 {
		config.LR = def.LR
	}
	if config.Threshold == 0 {
		config.Threshold = def.Threshold
	}
	if config.MaxIterations == 0 {
		config.MaxIterations = def.MaxIterations
	}
	if config.Step == 0 {
		config.Step = def.Step
	}
	if config.TrailLimit == 0 {
		config.TrailLimit = def.TrailLimit
	}

	d := &Descent{
		f:      f,
		config: config,
		trail:  ring.New[Point](config.TrailLimit),
	}
	d.Reset()
	return d
}

// Step moves x by -LR * f'(x) and reports where it landed.
//
// A non-finite derivative, position or function value ends the session as
// StatusDiverged without moving. A gradient magnitude below Threshold ends
// it as StatusConverged, reaching MaxIterations as StatusStopped. Once the
// session is over, Step returns the final report unchanged.
func (d *Descent) Step() DescentStep {
	if d.last.Status.Done() {
		return d.last
	}

	grad := Derivative(d.f, d.x, d.config.Step)
	if !Finite(grad) {
		d.last.Gradient = grad
		d.last.Status = StatusDiverged
		return d.last
	}

	next := d.x - d.config.LR*grad
	fx := d.f(next)
	if !Finite(next) || !Finite(fx) {
		d.last.Gradient = grad
		d.last.Status = StatusDiverged
		return d.last
	}

	d.x = next
	d.trail.Append(Point{X: next, Y: fx})
	if !d.hasBest || fx < d.best {
		d.best, d.hasBest = fx, true
	}

	d.last = DescentStep{
		Iteration: d.last.Iteration + 1,
		X:         next,
		Fx:        fx,
		Gradient:  grad,
		Status:    StatusRunning,
	}

	switch {
	case math.Abs(grad) < d.config.Threshold:
		d.last.Status = StatusConverged
	case d.last.Iteration >= d.config.MaxIterations:
		d.last.Status = StatusStopped
	}
	return d.last
}

// Reset returns the session to its starting point.
func (d *Descent) Reset() {
	d.x = d.config.Start
	d.trail.Clear()
	d.best, d.hasBest = 0, false
	d.last = DescentStep{
		X:      d.x,
		Fx:     d.f(d.x),
		Status: StatusRunning,
	}
}

// X returns the current position.
func (d *Descent) X() float64 {
	return d.x
}

// Last returns the most recent report.
func (d *Descent) Last() DescentStep {
	return d.last
}

// Trail returns the most recently visited points, oldest first.
func (d *Descent) Trail() []Point {
	return d.trail.Values()
}

// Best returns the lowest f(x) seen since the last reset.
func (d *Descent) Best() (float64, bool) {
	return d.best, d.hasBest
}

// Config returns the effective configuration.
func (d *Descent) Config() DescentConfig {
	return d.config
}
