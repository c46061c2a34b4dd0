// Package kmeans implements k-means clustering with Lloyd's algorithm, one
// assignment/update iteration per Step.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/SubhamSaiSamal/FlowLogic/internal/parallel"
)

// Unassigned marks a point that has not been assigned to a cluster yet.
const Unassigned = -1

// Config configures an Engine.
type Config struct {
	// K is the number of clusters.
	K int

	// Seed for reproducibility. -1 = random.
	Seed int64

	// HistoryLimit bounds the recorded snapshots (default: 5000).
	HistoryLimit int
}

// StepResult is returned by Engine.Step.
type StepResult struct {
	// Moved reports whether any assignment changed in this step. A step
	// that moves nothing is a fixed point: further steps change nothing.
	Moved bool

	// Inertia is the sum of squared distances from each point to its
	// nearest centroid, measured before centroids were recomputed.
	Inertia float64
}

// Engine holds centroids and assignments between steps.
//
// Engine is not safe for concurrent use.
type Engine struct {
	k           int
	rng         *rand.Rand
	centroids   [][]float64
	assignments []int
	history     *History
	parallel    parallel.Config
}

// New creates an engine. Centroids are chosen by Initialize or by the
// first Step.
func New(config Config) *Engine {
	var rng *rand.Rand
	if config.Seed >= 0 {
		rng = rand.New(rand.NewSource(config.Seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // User requested random seed
	}

	return &Engine{
		k:        config.K,
		rng:      rng,
		history:  NewHistory(config.HistoryLimit),
		parallel: parallel.DefaultConfig(),
	}
}

// K returns the configured cluster count.
func (e *Engine) K() int {
	return e.k
}

// Initialize picks k distinct data points as the starting centroids and
// marks every point Unassigned.
func (e *Engine) Initialize(data [][]float64) error {
	if e.k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, e.k)
	}
	if len(data) < e.k {
		return fmt.Errorf("%w: %d points for k=%d", ErrInsufficientData, len(data), e.k)
	}

	perm := e.rng.Perm(len(data))
	e.centroids = make([][]float64, e.k)
	for c := range e.centroids {
		e.centroids[c] = clonePoint(data[perm[c]])
	}

	e.assignments = unassigned(len(data))
	e.history.Clear()
	return nil
}

// Step runs one Lloyd iteration over data.
//
// The engine initializes itself on the first call. Every point is
// assigned to its nearest centroid; on ties the lowest index wins. Large
// datasets are assigned on several goroutines; the result does not depend
// on how the work is split. When any assignment changed, each centroid
// moves to the mean of its points and a centroid left without points is
// reseeded to a random data point.
//
// A point with a NaN or infinite coordinate has no nearest centroid. It
// stays Unassigned, does not contribute to any centroid, and makes
// Inertia NaN.
//
// The caller decides when to stop, typically once Moved is false.
func (e *Engine) Step(data [][]float64) (StepResult, error) {
	if len(data) == 0 {
		return StepResult{}, ErrEmptyData
	}
	if len(e.centroids) == 0 {
		if err := e.Initialize(data); err != nil {
			return StepResult{}, err
		}
	}
	if len(e.assignments) != len(data) {
		e.assignments = unassigned(len(data))
	}

	dim := len(e.centroids[0])
	for i, point := range data {
		if len(point) != dim {
			return StepResult{}, fmt.Errorf("%w: point %d has %d values, centroids have %d",
				ErrDimensionMismatch, i, len(point), dim)
		}
	}

	nearest := parallel.Map(len(data), func(i int) match {
		label, dist := e.Nearest(data[i])
		return match{label: label, dist: dist}
	}, e.parallel)

	var result StepResult
	for i, m := range nearest {
		if e.assignments[i] != m.label {
			e.assignments[i] = m.label
			result.Moved = true
		}
		result.Inertia += m.dist * m.dist
	}

	if result.Moved {
		e.updateCentroids(data)
	}

	e.history.Append(Snapshot{
		Centroids:   e.Centroids(),
		Assignments: e.Assignments(),
		Inertia:     result.Inertia,
	})

	return result, nil
}

// updateCentroids replaces every centroid with the mean of its assigned
// points, reseeding empty clusters.
func (e *Engine) updateCentroids(data [][]float64) {
	dim := len(e.centroids[0])
	sums := make([][]float64, e.k)
	counts := make([]int, e.k)
	for c := range sums {
		sums[c] = make([]float64, dim)
	}

	for i, point := range data {
		c := e.assignments[i]
		if c == Unassigned {
			continue
		}
		floats.Add(sums[c], point)
		counts[c]++
	}

	for c := range sums {
		if counts[c] == 0 {
			sums[c] = clonePoint(data[e.rng.Intn(len(data))])
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
	}

	e.centroids = sums
}

// Nearest returns the index of the centroid closest to point and the
// Euclidean distance to it. It returns (Unassigned, +Inf) when the engine
// has no centroids and (Unassigned, NaN) when no distance is finite.
func (e *Engine) Nearest(point []float64) (int, float64) {
	label, minDist := Unassigned, math.Inf(1)
	for c, centroid := range e.centroids {
		dist := floats.Distance(point, centroid, 2)
		if dist < minDist {
			minDist = dist
			label = c
		}
	}
	if label == Unassigned && len(e.centroids) > 0 {
		return Unassigned, math.NaN()
	}
	return label, minDist
}

// Predict assigns point to the nearest centroid without changing state.
// A point with a non-finite coordinate yields Unassigned.
func (e *Engine) Predict(point []float64) (int, error) {
	if len(e.centroids) == 0 {
		return Unassigned, ErrNotInitialized
	}
	if len(point) != len(e.centroids[0]) {
		return Unassigned, ErrDimensionMismatch
	}
	label, _ := e.Nearest(point)
	return label, nil
}

// Reset drops centroids, assignments and history.
func (e *Engine) Reset() {
	e.centroids = nil
	e.assignments = nil
	e.history.Clear()
}

// Centroids returns a copy of the current centroids.
func (e *Engine) Centroids() [][]float64 {
	out := make([][]float64, len(e.centroids))
	for c, centroid := range e.centroids {
		out[c] = clonePoint(centroid)
	}
	return out
}

// Assignments returns a copy of the cluster index per data point.
func (e *Engine) Assignments() []int {
	out := make([]int, len(e.assignments))
	copy(out, e.assignments)
	return out
}

// History returns a deep copy of the recorded snapshots from oldest to
// newest.
func (e *Engine) History() []Snapshot {
	snaps := e.history.Values()
	for i := range snaps {
		snaps[i] = snaps[i].clone()
	}
	return snaps
}

// match is the nearest centroid of one point.
type match struct {
	label int
	dist  float64
}

func clonePoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}

func unassigned(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Unassigned
	}
	return out
}
