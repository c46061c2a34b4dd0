package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks every section and returns all problems found, combined.
func (c Config) Validate() error {
	var errs error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	o := c.Optimizer
	check(slices.Contains(optim.Kinds(), optim.Kind(strings.ToLower(o.Kind))),
		"optimizer.kind %q is not one of %v", o.Kind, optim.Kinds())
	check(o.LR > 0, "optimizer.lr must be positive, got %g", o.LR)
	check(o.Momentum >= 0 && o.Momentum < 1, "optimizer.momentum must be in [0, 1), got %g", o.Momentum)
	check(o.Beta1 >= 0 && o.Beta1 < 1, "optimizer.beta1 must be in [0, 1), got %g", o.Beta1)
	check(o.Beta2 >= 0 && o.Beta2 < 1, "optimizer.beta2 must be in [0, 1), got %g", o.Beta2)
	check(o.Epsilon > 0, "optimizer.epsilon must be positive, got %g", o.Epsilon)
	check(o.Alpha >= 0 && o.Alpha < 1, "optimizer.alpha must be in [0, 1), got %g", o.Alpha)

	r := c.Regression
	check(r.Degree >= 1, "regression.degree must be at least 1, got %d", r.Degree)
	check(r.HistoryLimit >= 0, "regression.history_limit must not be negative, got %d", r.HistoryLimit)

	k := c.KMeans
	check(k.K >= 1, "kmeans.k must be at least 1, got %d", k.K)
	check(k.HistoryLimit >= 0, "kmeans.history_limit must not be negative, got %d", k.HistoryLimit)

	d := c.Descent
	if d.Expression == "" {
		_, err := calculus.Resolve(calculus.FunctionID(d.Function))
		check(err == nil, "descent.function %q is not one of %v", d.Function, calculus.FunctionIDs())
	}
	check(d.LR > 0, "descent.lr must be positive, got %g", d.LR)
	check(d.Threshold > 0, "descent.threshold must be positive, got %g", d.Threshold)
	check(d.MaxIterations >= 1, "descent.max_iterations must be at least 1, got %d", d.MaxIterations)
	check(d.Step > 0, "descent.step must be positive, got %g", d.Step)

	run := c.Run
	check(run.MaxIterations >= 1, "run.max_iterations must be at least 1, got %d", run.MaxIterations)
	check(run.Tolerance >= 0, "run.tolerance must not be negative, got %g", run.Tolerance)
	check(run.Tick >= 0, "run.tick must not be negative, got %s", run.Tick)

	_, err := zapcore.ParseLevel(c.Log.Level)
	check(err == nil, "log.level %q is not a zap level", c.Log.Level)

	return errs
}
