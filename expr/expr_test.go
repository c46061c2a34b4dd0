// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhamSaiSamal/FlowLogic/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/expr"
)

func TestCompileAndDescend(t *testing.T) {
	f, err := expr.Compile("(x - 2)^2 + 1")
	require.NoError(t, err)

	session := calculus.NewDescent(f.Func(), calculus.DescentConfig{LR: 0.2, Start: -1})
	step := session.Step()
	for !step.Status.Done() {
		step = session.Step()
	}

	assert.Equal(t, calculus.StatusConverged, step.Status)
	assert.InDelta(t, 2, step.X, 0.01)
	assert.InDelta(t, 1, step.Fx, 1e-3)
}

func TestCheck(t *testing.T) {
	assert.True(t, expr.Check("sin(x)").IsValid)
	assert.False(t, expr.Check("x; process.exit()").IsValid)

	_, err := expr.Compile("x; process.exit()")
	assert.ErrorIs(t, err, expr.ErrUnsafe)

	assert.NotEmpty(t, expr.Examples())
}
