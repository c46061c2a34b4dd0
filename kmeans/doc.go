// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kmeans provides k-means clustering stepped one Lloyd iteration
// at a time.
//
// # Basic Usage
//
//	engine := kmeans.New(kmeans.Config{K: 3, Seed: 42})
//	for {
//	    result, err := engine.Step(data)
//	    if err != nil {
//	        return err
//	    }
//	    if !result.Moved {
//	        break // fixed point
//	    }
//	}
//	fmt.Println(engine.Centroids())
//
// # Determinism
//
// With Seed >= 0 initialization and empty-cluster reseeding are
// reproducible. Ties between equidistant centroids go to the lowest index.
package kmeans
