// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package calculus

import (
	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
)

// Func is a real function of one variable.
type Func = calculus.Func

// FunctionID names a built-in function.
type FunctionID = calculus.FunctionID

// Built-in functions.
const (
	Quadratic = calculus.Quadratic
	Quartic   = calculus.Quartic
	Shifted   = calculus.Shifted
	Complex   = calculus.Complex
)

// DefaultStep is the default finite-difference step.
const DefaultStep = calculus.DefaultStep

// ErrUnknownFunction is returned by Resolve.
var ErrUnknownFunction = calculus.ErrUnknownFunction

// Descent session types.
type (
	Descent       = calculus.Descent
	DescentConfig = calculus.DescentConfig
	DescentStep   = calculus.DescentStep
	Status        = calculus.Status
	Point         = calculus.Point
)

// Descent states.
const (
	StatusRunning   = calculus.StatusRunning
	StatusConverged = calculus.StatusConverged
	StatusDiverged  = calculus.StatusDiverged
	StatusStopped   = calculus.StatusStopped
)

// Derivative estimates f'(x) by centered difference. A non-positive h
// selects DefaultStep.
func Derivative(f Func, x, h float64) float64 {
	return calculus.Derivative(f, x, h)
}

// Builtin returns the built-in function with the given id.
func Builtin(id FunctionID) (Func, bool) {
	return calculus.Builtin(id)
}

// Resolve is Builtin with an error for unknown ids.
func Resolve(id FunctionID) (Func, error) {
	return calculus.Resolve(id)
}

// FunctionIDs lists the built-in functions.
func FunctionIDs() []FunctionID {
	return calculus.FunctionIDs()
}

// DefaultDescentConfig returns the default descent settings.
func DefaultDescentConfig() DescentConfig {
	return calculus.DefaultDescentConfig()
}

// NewDescent creates a descent session over f.
//
// Example:
//
//	session := calculus.NewDescent(f, calculus.DescentConfig{LR: 0.05, Start: -3})
func NewDescent(f Func, config DescentConfig) *Descent {
	return calculus.NewDescent(f, config)
}
