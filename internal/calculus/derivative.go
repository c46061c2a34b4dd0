// Package calculus provides the single-variable pieces of the gradient
// descent demos: a centered finite-difference derivative, the built-in toy
// functions and a stepping descent session.
package calculus

import "math"

// Func is a real function of one variable.
type Func func(x float64) float64

// DefaultStep is the finite-difference step used when none is given.
const DefaultStep = 1e-4

// Derivative estimates f'(x) with the centered difference
//
//	(f(x+h) - f(x-h)) / 2h
//
// A non-positive h selects DefaultStep. Non-finite results are returned as
// is so callers can detect divergence.
func Derivative(f Func, x, h float64) float64 {
	if h <= 0 {
		h = DefaultStep
	}
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
