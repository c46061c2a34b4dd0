package train

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome is how a run ended.
type Outcome string

// Run outcomes.
const (
	OutcomeConverged Outcome = "converged"
	OutcomeDiverged  Outcome = "diverged"
	OutcomeStopped   Outcome = "stopped"
	OutcomeFailed    Outcome = "failed"
)

// DefaultMaxIterations caps a run when RunConfig leaves MaxIterations at
// zero.
const DefaultMaxIterations = 1000

// RunConfig configures a Runner.
type RunConfig struct {
	MaxIterations int           // Step cap (default: 1000)
	Tick          time.Duration // Delay between steps; zero steps back to back
}

// Record describes one finished run.
type Record struct {
	ID         uuid.UUID `yaml:"id"`
	Task       string    `yaml:"task"`
	Iterations int       `yaml:"iterations"`
	Outcome    Outcome   `yaml:"outcome"`
	FinalLoss  float64   `yaml:"final_loss"`
	Started    time.Time `yaml:"started"`
	Finished   time.Time `yaml:"finished"`
}

// Duration returns how long the run took.
func (r Record) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Observer is called after every step.
type Observer func(iteration int, p Progress)

// Runner steps tasks to completion.
type Runner struct {
	config RunConfig
	logger *zap.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(config RunConfig, logger *zap.Logger) *Runner {
	if config.MaxIterations <= 0 {
		config.MaxIterations = DefaultMaxIterations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{config: config, logger: logger.With(zap.String("component", "runner"))}
}

// Run steps task until it converges, diverges, stops itself or reaches
// MaxIterations. A non-finite loss counts as divergence.
//
// When ctx is cancelled Run returns the record so far, with outcome
// stopped, together with ctx.Err(). A step error ends the run as failed
// and is returned wrapped.
func (r *Runner) Run(ctx context.Context, task Task, observer Observer) (Record, error) {
	if task == nil {
		return Record{}, ErrNoTask
	}

	rec := Record{
		ID:        uuid.New(),
		Task:      task.Name(),
		FinalLoss: math.NaN(),
		Started:   time.Now(),
	}
	log := r.logger.With(zap.String("task", rec.Task), zap.Stringer("run", rec.ID))

	var tick <-chan time.Time
	if r.config.Tick > 0 {
		ticker := time.NewTicker(r.config.Tick)
		defer ticker.Stop()
		tick = ticker.C
	}

	for rec.Iterations < r.config.MaxIterations {
		if err := wait(ctx, tick); err != nil {
			log.Info("run cancelled", zap.Int("iterations", rec.Iterations))
			return finish(rec, OutcomeStopped), err
		}

		p, err := task.Step()
		if err != nil {
			log.Error("step failed", zap.Int("iteration", rec.Iterations+1), zap.Error(err))
			return finish(rec, OutcomeFailed), fmt.Errorf("train: %s step %d: %w", rec.Task, rec.Iterations+1, err)
		}
		rec.Iterations++
		rec.FinalLoss = p.Loss

		if observer != nil {
			observer(rec.Iterations, p)
		}
		log.Debug("step", zap.Int("iteration", rec.Iterations), zap.Float64("loss", p.Loss))

		switch {
		case p.Diverged || math.IsNaN(p.Loss) || math.IsInf(p.Loss, 0):
			log.Warn("run diverged", zap.Int("iterations", rec.Iterations), zap.Float64("loss", p.Loss))
			return finish(rec, OutcomeDiverged), nil
		case p.Converged:
			return r.done(log, finish(rec, OutcomeConverged)), nil
		case p.Stopped:
			return r.done(log, finish(rec, OutcomeStopped)), nil
		}
	}

	return r.done(log, finish(rec, OutcomeStopped)), nil
}

func (r *Runner) done(log *zap.Logger, rec Record) Record {
	log.Info("run finished",
		zap.String("outcome", string(rec.Outcome)),
		zap.Int("iterations", rec.Iterations),
		zap.Float64("final_loss", rec.FinalLoss),
		zap.Duration("elapsed", rec.Duration()))
	return rec
}

// wait blocks until the next tick, or only checks ctx when tick is nil.
func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}

func finish(rec Record, outcome Outcome) Record {
	rec.Outcome = outcome
	rec.Finished = time.Now()
	return rec
}
