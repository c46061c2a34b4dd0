// Package train drives regression, clustering and descent sessions
// without a UI: a Runner steps a Task until it converges, diverges or
// hits its iteration cap, and reports the run as a Record.
package train

import (
	"math"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
	"github.com/SubhamSaiSamal/FlowLogic/internal/regression"
)

// Progress is what a task reports after one step.
type Progress struct {
	Loss      float64
	Converged bool
	Diverged  bool // The task detected divergence itself
	Stopped   bool // The task ended on its own limit
}

// Task is one steppable training session.
type Task interface {
	Name() string
	Step() (Progress, error)
}

type regressionTask struct {
	model     *regression.Model
	batch     []dataset.DataPoint
	tolerance float64
	prevLoss  float64
	stepped   bool
}

// RegressionTask steps model on batch. It converges once the loss changes
// by less than tolerance between two steps; a non-positive tolerance
// never converges.
func RegressionTask(model *regression.Model, batch []dataset.DataPoint, tolerance float64) Task {
	return &regressionTask{model: model, batch: batch, tolerance: tolerance}
}

func (t *regressionTask) Name() string { return "regression" }

func (t *regressionTask) Step() (Progress, error) {
	result := t.model.Step(t.batch)
	p := Progress{Loss: result.Loss, Diverged: !result.Finite()}
	if t.stepped && t.tolerance > 0 {
		p.Converged = math.Abs(result.Loss-t.prevLoss) < t.tolerance
	}
	t.prevLoss, t.stepped = result.Loss, true
	return p, nil
}

type clusteringTask struct {
	engine *kmeans.Engine
	data   [][]float64
}

// ClusteringTask steps engine on data, reporting inertia as the loss. It
// converges at the first step that moves no point.
func ClusteringTask(engine *kmeans.Engine, data [][]float64) Task {
	return &clusteringTask{engine: engine, data: data}
}

func (t *clusteringTask) Name() string { return "clustering" }

func (t *clusteringTask) Step() (Progress, error) {
	result, err := t.engine.Step(t.data)
	if err != nil {
		return Progress{}, err
	}
	return Progress{Loss: result.Inertia, Converged: !result.Moved}, nil
}

type descentTask struct {
	session *calculus.Descent
}

// DescentTask steps a descent session, reporting f(x) as the loss.
func DescentTask(session *calculus.Descent) Task {
	return &descentTask{session: session}
}

func (t *descentTask) Name() string { return "descent" }

func (t *descentTask) Step() (Progress, error) {
	step := t.session.Step()
	return Progress{
		Loss:      step.Fx,
		Converged: step.Status == calculus.StatusConverged,
		Diverged:  step.Status == calculus.StatusDiverged,
		Stopped:   step.Status == calculus.StatusStopped,
	}, nil
}
