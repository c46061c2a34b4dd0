// Package expr compiles single-variable arithmetic expressions such as
// "x^2 + 3sin(2x) - 2" into functions of x.
//
// Expressions are parsed into a closure tree; nothing outside the
// arithmetic grammar is ever evaluated. Inputs that look like attempts at
// code injection are rejected before parsing.
package expr

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
)

// unsafePattern matches assignments, statement and block delimiters,
// arrow functions and identifiers associated with scope escape.
var unsafePattern = regexp.MustCompile(
	`(?i)[=;{}]|=>|eval|function|const|let|var|import|require|process|window|document|global`)

// Samples are the inputs a compiled expression is test-evaluated at. An
// expression is valid when at least one of them yields a finite value.
var Samples = []float64{-2, 0, 0.5, 1, 2, math.Pi}

// Function is a compiled expression.
type Function struct {
	expression string
	eval       node
}

// Compile parses expression into a Function.
//
// Errors, in the order they are checked: ErrEmpty for blank input,
// ErrUnsafe when a forbidden pattern appears, a *SyntaxError when the
// input does not parse, and ErrUndefined when every sample in Samples
// evaluates to NaN or ±Inf. Domain errors at individual points (sqrt(x)
// at x = -2) are not errors; Eval returns NaN there.
func Compile(expression string) (*Function, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmpty
	}
	if m := unsafePattern.FindString(expression); m != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsafe, m)
	}

	eval, err := parse(expression)
	if err != nil {
		return nil, err
	}

	f := &Function{expression: expression, eval: eval}
	for _, x := range Samples {
		if calculus.Finite(f.Eval(x)) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUndefined, expression)
}

// Eval evaluates the expression at x.
func (f *Function) Eval(x float64) float64 {
	return f.eval(x)
}

// Expression returns the source text.
func (f *Function) Expression() string {
	return f.expression
}

// Func returns Eval as a calculus.Func.
func (f *Function) Func() calculus.Func {
	return calculus.Func(f.eval)
}

// Result is the outcome of Check.
type Result struct {
	Expression string
	IsValid    bool
	Evaluate   calculus.Func // nil unless IsValid
	Error      string        // empty when IsValid
}

// Check compiles expression and reports the outcome as a value instead of
// an error.
func Check(expression string) Result {
	f, err := Compile(expression)
	if err != nil {
		return Result{Expression: expression, Error: err.Error()}
	}
	return Result{Expression: expression, IsValid: true, Evaluate: f.Func()}
}

// Example is a starter expression.
type Example struct {
	Label      string
	Expression string
}

// Examples lists starter expressions, each of which compiles.
var Examples = []Example{
	{Label: "Quadratic", Expression: "x^2"},
	{Label: "Cubic", Expression: "x^3 - 2*x"},
	{Label: "Exponential", Expression: "exp(x/4)"},
	{Label: "Sin Wave", Expression: "sin(x)"},
	{Label: "Dampened", Expression: "sin(x) * exp(-x/5)"},
	{Label: "Logarithmic", Expression: "ln(x)"},
	{Label: "Complex", Expression: "x^2 + 3*sin(2*x) - 2"},
}
