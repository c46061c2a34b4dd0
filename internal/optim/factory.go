package optim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOptimizer is returned by New for an unrecognized Kind.
var ErrUnknownOptimizer = errors.New("optim: unknown optimizer")

// Kind names an optimizer variant.
type Kind string

// Supported optimizer kinds.
const (
	KindSGD      Kind = "sgd"
	KindMomentum Kind = "momentum"
	KindRMSProp  Kind = "rmsprop"
	KindAdam     Kind = "adam"
)

// Kinds lists every kind accepted by New.
func Kinds() []Kind {
	return []Kind{KindSGD, KindMomentum, KindRMSProp, KindAdam}
}

// Settings is the flat, variant-agnostic optimizer configuration used by
// configuration files and the CLI. Fields that do not apply to Kind are
// ignored; zero values select each variant's defaults, except Momentum
// which defaults to 0.9 only when left at zero here.
type Settings struct {
	Kind     Kind
	LR       float64
	Momentum float64 // Momentum decay
	Beta1    float64 // Adam
	Beta2    float64 // Adam
	Epsilon  float64 // Adam, RMSProp
	Alpha    float64 // RMSProp
}

// New builds the optimizer described by s.
func New(s Settings) (Optimizer, error) {
	switch Kind(strings.ToLower(string(s.Kind))) {
	case KindSGD, "":
		return NewSGD(SGDConfig{LR: s.LR}), nil
	case KindMomentum:
		cfg := DefaultMomentumConfig()
		if s.LR != 0 {
			cfg.LR = s.LR
		}
		if s.Momentum != 0 {
			cfg.Decay = s.Momentum
		}
		return NewMomentum(cfg), nil
	case KindRMSProp:
		return NewRMSProp(RMSPropConfig{LR: s.LR, Alpha: s.Alpha, Eps: s.Epsilon}), nil
	case KindAdam:
		return NewAdam(AdamConfig{
			LR:    s.LR,
			Betas: [2]float64{s.Beta1, s.Beta2},
			Eps:   s.Epsilon,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, s.Kind)
	}
}
