// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/SubhamSaiSamal/FlowLogic/internal/expr"
)

// Function is a compiled expression.
type Function = expr.Function

// Result is the outcome of Check.
type Result = expr.Result

// SyntaxError reports where an expression failed to parse.
type SyntaxError = expr.SyntaxError

// Example is a starter expression.
type Example = expr.Example

// Errors returned by Compile.
var (
	ErrEmpty     = expr.ErrEmpty
	ErrUnsafe    = expr.ErrUnsafe
	ErrSyntax    = expr.ErrSyntax
	ErrUndefined = expr.ErrUndefined
)

// Compile parses expression into a Function.
func Compile(expression string) (*Function, error) {
	return expr.Compile(expression)
}

// Check compiles expression and reports the outcome as a value.
//
// Example:
//
//	if r := expr.Check(input); !r.IsValid {
//	    fmt.Println(r.Error)
//	}
func Check(expression string) Result {
	return expr.Check(expression)
}

// Examples returns the starter expressions.
func Examples() []Example {
	return append([]Example(nil), expr.Examples...)
}
