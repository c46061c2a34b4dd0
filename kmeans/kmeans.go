// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kmeans

import (
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
)

// Engine holds centroids and assignments between steps.
type Engine = kmeans.Engine

// Config configures an Engine.
type Config = kmeans.Config

// StepResult is returned by Engine.Step.
type StepResult = kmeans.StepResult

// Snapshot is one recorded step.
type Snapshot = kmeans.Snapshot

// Unassigned marks a point not yet assigned to a cluster.
const Unassigned = kmeans.Unassigned

// Errors returned by Engine.
var (
	ErrInvalidK          = kmeans.ErrInvalidK
	ErrInsufficientData  = kmeans.ErrInsufficientData
	ErrEmptyData         = kmeans.ErrEmptyData
	ErrNotInitialized    = kmeans.ErrNotInitialized
	ErrDimensionMismatch = kmeans.ErrDimensionMismatch
)

// New creates an engine.
//
// Example:
//
//	engine := kmeans.New(kmeans.Config{K: 3, Seed: 42})
func New(config Config) *Engine {
	return kmeans.New(config)
}
