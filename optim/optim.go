// Copyright 2025 FlowLogic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Gradients holds per-weight and bias gradients.
type Gradients = optim.Gradients

// SGD (Stochastic Gradient Descent)

// SGD represents the plain gradient step optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Momentum

// Momentum represents gradient descent with a decaying velocity.
type Momentum = optim.Momentum

// MomentumConfig contains configuration for the Momentum optimizer.
type MomentumConfig = optim.MomentumConfig

// DefaultMomentumConfig returns LR 0.01 with decay 0.9.
func DefaultMomentumConfig() MomentumConfig {
	return optim.DefaultMomentumConfig()
}

// NewMomentum creates a new Momentum optimizer.
//
// Example:
//
//	optimizer := optim.NewMomentum(optim.MomentumConfig{
//	    LR:    0.01,
//	    Decay: 0.9,
//	})
func NewMomentum(config MomentumConfig) *Momentum {
	return optim.NewMomentum(config)
}

// RMSProp

// RMSProp represents the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig contains configuration for the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.05,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Factory

// Kind names an optimizer variant.
type Kind = optim.Kind

// Settings is the flat optimizer configuration accepted by New.
type Settings = optim.Settings

// Supported optimizer kinds.
const (
	KindSGD      = optim.KindSGD
	KindMomentum = optim.KindMomentum
	KindRMSProp  = optim.KindRMSProp
	KindAdam     = optim.KindAdam
)

// ErrUnknownOptimizer is returned by New for an unrecognized kind.
var ErrUnknownOptimizer = optim.ErrUnknownOptimizer

// New builds an optimizer from flat settings.
func New(s Settings) (Optimizer, error) {
	return optim.New(s)
}
