// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr compiles arithmetic expressions in x into functions.
//
// # Grammar
//
// Operators are + - * / and ^ (or **), with ^ right-associative and
// binding tighter than unary minus, so -x^2 is -(x^2). Juxtaposition
// multiplies: 3x, 2sin(x), (x+1)(x-1), x pi. Names are case-insensitive.
//
// Functions: sin cos tan asin acos atan sinh cosh tanh ln log exp sqrt
// cbrt abs floor ceil round sign. ln is the natural logarithm, log is base
// 10, round rounds halves up. Constants: pi, e.
//
// # Basic Usage
//
//	f, err := expr.Compile("x^2 + 3sin(2x) - 2")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Eval(1.5))
//
// # Safety
//
// Input containing assignment, statement or block syntax, or identifiers
// such as eval, process or window, is rejected with ErrUnsafe before it
// is parsed.
package expr
