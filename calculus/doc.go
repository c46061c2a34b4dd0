// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package calculus provides numeric derivatives and 1-D gradient descent.
//
// # Basic Usage
//
//	f, _ := calculus.Builtin(calculus.Quadratic)
//	session := calculus.NewDescent(f, calculus.DefaultDescentConfig())
//	for {
//	    step := session.Step()
//	    if step.Status.Done() {
//	        fmt.Println(step.Status, step.X)
//	        break
//	    }
//	}
//
// Any func(float64) float64 can be descended, including compiled
// expressions from the expr package.
package calculus
