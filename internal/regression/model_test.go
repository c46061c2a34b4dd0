package regression_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
	"github.com/SubhamSaiSamal/FlowLogic/internal/regression"
)

// line returns labeled points on y = 2x + 1.
func line(xs ...float64) []dataset.DataPoint {
	points := make([]dataset.DataPoint, len(xs))
	for i, x := range xs {
		points[i] = dataset.Labeled(i, []float64{x}, 2*x+1)
	}
	return points
}

func TestSGD_OneStepReducesLoss(t *testing.T) {
	batch := line(1, 2)
	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.1}), regression.Config{})

	initialLoss := model.Evaluate(batch)
	assert.InDelta(t, 17.0, initialLoss, 1e-12) // (3² + 5²) / 2

	result := model.Step(batch)

	// dw = (2/2)(-3*1 - 5*2) = -13, db = -8
	assert.InDelta(t, 17.0, result.Loss, 1e-12)
	assert.InDelta(t, 1.3, result.Weights[0], 1e-12)
	assert.InDelta(t, 0.8, result.Bias, 1e-12)
	assert.Less(t, model.Evaluate(batch), initialLoss)
}

func TestAdam_FitsLine(t *testing.T) {
	for _, lr := range []float64{0.05, 0.1, 0.2, 0.5} {
		t.Run(fmt.Sprintf("lr=%g", lr), func(t *testing.T) {
			batch := line(-2, -1, 0, 1, 2)
			model := regression.New(1, optim.NewAdam(optim.AdamConfig{LR: lr}), regression.Config{})

			reached := -1
			for i := range 500 {
				result := model.Step(batch)
				require.True(t, result.Finite())
				if result.Loss < 1e-6 {
					reached = i
					break
				}
			}

			require.GreaterOrEqual(t, reached, 0, "loss never fell below 1e-6")
			assert.InDelta(t, 2.0, model.Weights()[0], 1e-2)
			assert.InDelta(t, 1.0, model.Bias(), 1e-2)
		})
	}
}

func TestMomentumZeroDecayMatchesSGD(t *testing.T) {
	batch := line(0, 1, 2, 3)
	sgd := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.02}), regression.Config{})
	momentum := regression.New(1, optim.NewMomentum(optim.MomentumConfig{LR: 0.02}), regression.Config{})

	for range 20 {
		assert.Equal(t, sgd.Step(batch), momentum.Step(batch))
	}
}

func TestResetReproducesFirstStep(t *testing.T) {
	batch := line(1, 2, 3)
	model := regression.New(1, optim.NewAdam(optim.AdamConfig{LR: 0.1}), regression.Config{})

	first := model.Step(batch)
	for range 10 {
		model.Step(batch)
	}

	model.Reset()
	assert.Equal(t, []float64{0}, model.Weights())
	assert.Equal(t, 0.0, model.Bias())
	assert.Empty(t, model.History())

	assert.Equal(t, first, model.Step(batch))

	fresh := regression.New(1, optim.NewAdam(optim.AdamConfig{LR: 0.1}), regression.Config{})
	fresh.Step(batch)
	assert.Equal(t, fresh.History(), model.History())
}

func TestUnlabeledPointsAreSkipped(t *testing.T) {
	labeled := line(1, 2)
	mixed := append(line(1, 2), dataset.Unlabeled(9, []float64{100}))

	model := regression.New(1, nil, regression.Config{})

	lossA, gradsA := model.ComputeGradients(labeled)
	lossB, gradsB := model.ComputeGradients(mixed)

	assert.Equal(t, lossA, lossB)
	assert.Equal(t, gradsA, gradsB)
}

func TestNoLabeledPoints(t *testing.T) {
	model := regression.New(2, nil, regression.Config{})
	batch := []dataset.DataPoint{dataset.Unlabeled(0, []float64{1, 2})}

	result := model.Step(batch)

	assert.Equal(t, 0.0, result.Loss)
	assert.Equal(t, []float64{0, 0}, result.Weights)
	assert.Equal(t, 0.0, result.Bias)
}

func TestPredict(t *testing.T) {
	p := regression.Params{Weights: []float64{2, -1}, Bias: 0.5}
	assert.InDelta(t, 2*3-1*4+0.5, regression.Predict(p, []float64{3, 4}), 1e-12)
}

func TestHistoryIsBounded(t *testing.T) {
	batch := line(1, 2)
	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.01}), regression.Config{HistoryLimit: 3})

	var results []regression.StepResult
	for range 5 {
		results = append(results, model.Step(batch))
	}

	history := model.History()
	require.Len(t, history, 3)
	for i, snap := range history {
		want := results[i+2]
		assert.Equal(t, want.Weights, snap.Weights)
		assert.Equal(t, want.Bias, snap.Bias)
		assert.Equal(t, want.Loss, snap.Loss)
	}
}

func TestDefaultHistoryLimit(t *testing.T) {
	h := regression.NewHistory(0)
	assert.Equal(t, regression.DefaultHistoryLimit, h.Cap())

	for i := range regression.DefaultHistoryLimit + 10 {
		h.Append(regression.Snapshot{Loss: float64(i)})
	}
	snaps := h.Values()
	require.Len(t, snaps, regression.DefaultHistoryLimit)
	assert.Equal(t, 10.0, snaps[0].Loss)

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, float64(regression.DefaultHistoryLimit+9), last.Loss)
}

func TestDivergenceIsReported(t *testing.T) {
	batch := line(1, 2)
	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 10}), regression.Config{})

	diverged := false
	for range 2000 {
		if !model.Step(batch).Finite() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestStepResultDoesNotAlias(t *testing.T) {
	model := regression.New(1, optim.NewSGD(optim.SGDConfig{LR: 0.1}), regression.Config{})
	result := model.Step(line(1, 2))

	result.Weights[0] = 42
	assert.NotEqual(t, 42.0, model.Weights()[0])
	assert.NotEqual(t, 42.0, model.History()[0].Weights[0])

	history := model.History()
	history[0].Weights[0] = 42
	assert.NotEqual(t, 42.0, model.History()[0].Weights[0])
}

func TestScore(t *testing.T) {
	batch := line(-2, -1, 0, 1, 2)
	model := regression.New(1, optim.NewAdam(optim.AdamConfig{LR: 0.1}), regression.Config{})
	for range 300 {
		model.Step(batch)
	}
	assert.InDelta(t, 1.0, model.Score(batch), 1e-3)
}

func TestNewDefaults(t *testing.T) {
	model := regression.New(3, nil, regression.Config{})
	assert.Equal(t, 3, model.FeatureCount())
	assert.InDelta(t, regression.DefaultLR, model.Optimizer().GetLR(), 1e-15)

	assert.Panics(t, func() { regression.New(0, nil, regression.Config{}) })
}

func TestAdvanceLeavesInputUntouched(t *testing.T) {
	p := regression.ZeroParams(1)
	next, loss := regression.Advance(p, optim.NewSGD(optim.SGDConfig{LR: 0.1}), line(1, 2))

	assert.Equal(t, []float64{0}, p.Weights)
	assert.InDelta(t, 17.0, loss, 1e-12)
	assert.InDelta(t, 1.3, next.Weights[0], 1e-12)
}
