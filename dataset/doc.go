// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides data points, the built-in synthetic datasets
// and CSV import.
//
// # Built-in Datasets
//
//   - study-scores: hours studied against exam score (regression)
//   - customer-segments: three 3-D customer clusters (clustering)
//   - noisy-sine: a noisy sine wave for polynomial fitting (regression)
//
// # CSV
//
//	table, err := dataset.LoadCSV("houses.csv")
//	if err != nil {
//	    return err
//	}
//	points, err := table.Points([]string{"size", "rooms"}, "price")
//
// Empty label cells produce unlabeled points, which regression ignores.
package dataset
