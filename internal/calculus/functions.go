package calculus

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction is returned by Resolve for an unregistered id.
var ErrUnknownFunction = errors.New("calculus: unknown function")

// FunctionID names a built-in toy function.
type FunctionID string

// Built-in functions.
const (
	Quadratic FunctionID = "quadratic"
	Quartic   FunctionID = "quartic"
	Shifted   FunctionID = "shifted"
	Complex   FunctionID = "complex"
)

var builtins = map[FunctionID]Func{
	// 0.1x², minimum at 0
	Quadratic: func(x float64) float64 { return x * x * 0.1 },
	// 0.01x⁴, flat near the minimum
	Quartic: func(x float64) float64 { return x * x * x * x * 0.01 },
	// 0.1(x-3)² + 2, minimum 2 at x=3
	Shifted: func(x float64) float64 { return (x-3)*(x-3)*0.1 + 2 },
	// 0.01x³ - 0.3x² + 0.9x, local max near 1.63, local min near 18.37
	Complex: func(x float64) float64 { return x*x*x*0.01 - 6*x*x*0.05 + 9*x*0.1 },
}

// FunctionIDs lists the built-in functions in display order.
func FunctionIDs() []FunctionID {
	return []FunctionID{Quadratic, Quartic, Shifted, Complex}
}

// Builtin returns the built-in function for id.
func Builtin(id FunctionID) (Func, bool) {
	f, ok := builtins[id]
	return f, ok
}

// Resolve is Builtin with an error for unknown ids.
func Resolve(id FunctionID) (Func, error) {
	f, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, id)
	}
	return f, nil
}
