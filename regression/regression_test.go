// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package regression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhamSaiSamal/FlowLogic/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/optim"
	"github.com/SubhamSaiSamal/FlowLogic/regression"
)

// TestOptimizers verifies that every public optimizer drives a model.
func TestOptimizers(t *testing.T) {
	batch := []regression.DataPoint{
		dataset.Labeled(0, []float64{-1}, -1),
		dataset.Labeled(1, []float64{0}, 1),
		dataset.Labeled(2, []float64{1}, 3),
	}

	tests := []struct {
		name      string
		optimizer optim.Optimizer
	}{
		{"SGD", optim.NewSGD(optim.SGDConfig{LR: 0.1})},
		{"Momentum", optim.NewMomentum(optim.DefaultMomentumConfig())},
		{"RMSProp", optim.NewRMSProp(optim.RMSPropConfig{LR: 0.01})},
		{"Adam", optim.NewAdam(optim.AdamConfig{LR: 0.05})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := regression.New(1, tt.optimizer, regression.Config{})
			before := model.Evaluate(batch)

			for range 20 {
				require.True(t, model.Step(batch).Finite())
			}
			assert.Less(t, model.Evaluate(batch), before)
		})
	}
}

func TestPureHelpers(t *testing.T) {
	batch := []regression.DataPoint{
		dataset.Labeled(0, []float64{1}, 3),
		dataset.Labeled(1, []float64{2}, 5),
	}

	p := regression.ZeroParams(1)
	loss, grads := regression.ComputeGradients(p, batch)
	assert.InDelta(t, 17.0, loss, 1e-12)
	assert.InDelta(t, -13.0, grads.Weights[0], 1e-12)
	assert.InDelta(t, -8.0, grads.Bias, 1e-12)

	next, _ := regression.Advance(p, optim.NewSGD(optim.SGDConfig{LR: 0.1}), batch)
	assert.InDelta(t, 1.3*2+0.8, regression.Predict(next, []float64{2}), 1e-12)
}
