package kmeans_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
)

// runToConvergence steps until nothing moves and returns the final result.
func runToConvergence(t *testing.T, e *kmeans.Engine, data [][]float64) kmeans.StepResult {
	t.Helper()
	for range 100 {
		result, err := e.Step(data)
		require.NoError(t, err)
		if !result.Moved {
			return result
		}
	}
	t.Fatal("k-means did not converge in 100 steps")
	return kmeans.StepResult{}
}

func TestInitialize_Errors(t *testing.T) {
	err := kmeans.New(kmeans.Config{K: 0}).Initialize([][]float64{{1}})
	assert.ErrorIs(t, err, kmeans.ErrInvalidK)

	err = kmeans.New(kmeans.Config{K: 3}).Initialize([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, kmeans.ErrInsufficientData)

	_, err = kmeans.New(kmeans.Config{K: 3}).Step([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, kmeans.ErrInsufficientData)
}

func TestInitialize_DistinctPoints(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	e := kmeans.New(kmeans.Config{K: 3, Seed: 11})

	require.NoError(t, e.Initialize(data))

	centroids := e.Centroids()
	require.Len(t, centroids, 3)
	seen := map[float64]bool{}
	for _, c := range centroids {
		assert.Contains(t, data, c)
		assert.False(t, seen[c[0]], "centroids must come from distinct points")
		seen[c[0]] = true
	}

	for _, a := range e.Assignments() {
		assert.Equal(t, kmeans.Unassigned, a)
	}
}

func TestStep_EmptyData(t *testing.T) {
	_, err := kmeans.New(kmeans.Config{K: 1}).Step(nil)
	assert.ErrorIs(t, err, kmeans.ErrEmptyData)
}

func TestStep_ConvergesToFixedPoint(t *testing.T) {
	d := dataset.CustomerSegments(rand.New(rand.NewSource(5)))
	data := d.Features()
	e := kmeans.New(kmeans.Config{K: 3, Seed: 5})

	runToConvergence(t, e, data)
	centroids := e.Centroids()
	assignments := e.Assignments()

	for range 3 {
		result, err := e.Step(data)
		require.NoError(t, err)
		assert.False(t, result.Moved)
	}
	assert.Equal(t, centroids, e.Centroids())
	assert.Equal(t, assignments, e.Assignments())
}

func TestStep_Inertia(t *testing.T) {
	data := [][]float64{{0}, {2}, {10}, {12}}
	e := kmeans.New(kmeans.Config{K: 2, Seed: 3})

	result := runToConvergence(t, e, data)

	assert.InDelta(t, 4.0, result.Inertia, 1e-12)
	centroids := e.Centroids()
	assert.ElementsMatch(t, [][]float64{{1}, {11}}, centroids)

	a := e.Assignments()
	assert.Equal(t, a[0], a[1])
	assert.Equal(t, a[2], a[3])
	assert.NotEqual(t, a[0], a[2])
}

func TestNearest_TieGoesToLowestIndex(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 2, Seed: 1})
	require.NoError(t, e.Initialize([][]float64{{0}, {2}}))

	label, dist := e.Nearest([]float64{1})

	assert.Equal(t, 0, label)
	assert.InDelta(t, 1.0, dist, 1e-12)
}

func TestStep_ReseedsEmptyCluster(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 2, Seed: 9})
	// Two identical centroids: every point ties and goes to cluster 0.
	require.NoError(t, e.Initialize([][]float64{{0}, {0}}))

	data := [][]float64{{0}, {0}, {10}}
	result, err := e.Step(data)
	require.NoError(t, err)
	assert.True(t, result.Moved)

	centroids := e.Centroids()
	assert.InDelta(t, 10.0/3, centroids[0][0], 1e-12)
	assert.False(t, math.IsNaN(centroids[1][0]))
	assert.Contains(t, data, centroids[1])
}

func TestStep_NonFinitePointStaysUnassigned(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := kmeans.New(kmeans.Config{K: 2, Seed: 4})
			require.NoError(t, e.Initialize([][]float64{{0}, {10}}))

			data := [][]float64{{0}, {1}, {tt.value}, {10}}
			result, err := e.Step(data)
			require.NoError(t, err)

			assert.True(t, math.IsNaN(result.Inertia))
			assert.Equal(t, kmeans.Unassigned, e.Assignments()[2])
			assert.ElementsMatch(t, [][]float64{{0.5}, {10}}, e.Centroids())

			label, dist := e.Nearest([]float64{tt.value})
			assert.Equal(t, kmeans.Unassigned, label)
			assert.True(t, math.IsNaN(dist))

			label, err = e.Predict([]float64{tt.value})
			require.NoError(t, err)
			assert.Equal(t, kmeans.Unassigned, label)
		})
	}
}

func TestStep_AllPointsNonFinite(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 2, Seed: 4})
	data := [][]float64{{math.NaN()}, {math.Inf(1)}, {math.NaN()}}

	assert.NotPanics(t, func() {
		for range 3 {
			result, err := e.Step(data)
			require.NoError(t, err)
			assert.True(t, math.IsNaN(result.Inertia))
		}
	})
	for _, a := range e.Assignments() {
		assert.Equal(t, kmeans.Unassigned, a)
	}
}

func TestStep_DimensionMismatch(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 1, Seed: 1})
	require.NoError(t, e.Initialize([][]float64{{0, 0}}))

	_, err := e.Step([][]float64{{1, 1}, {1}})
	assert.ErrorIs(t, err, kmeans.ErrDimensionMismatch)
}

func TestStep_DataLengthChangeRestartsAssignments(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 1, Seed: 1})
	runToConvergence(t, e, [][]float64{{0}, {2}})

	result, err := e.Step([][]float64{{0}, {2}, {4}})
	require.NoError(t, err)
	assert.True(t, result.Moved)
	assert.Equal(t, []int{0, 0, 0}, e.Assignments())
}

func TestSeedIsDeterministic(t *testing.T) {
	data := dataset.CustomerSegments(rand.New(rand.NewSource(8))).Features()
	a := kmeans.New(kmeans.Config{K: 3, Seed: 42})
	b := kmeans.New(kmeans.Config{K: 3, Seed: 42})

	runToConvergence(t, a, data)
	runToConvergence(t, b, data)

	assert.Equal(t, a.Centroids(), b.Centroids())
}

func TestHistoryAndReset(t *testing.T) {
	data := [][]float64{{0}, {2}, {10}, {12}}
	e := kmeans.New(kmeans.Config{K: 2, Seed: 3, HistoryLimit: 2})

	for range 4 {
		_, err := e.Step(data)
		require.NoError(t, err)
	}

	history := e.History()
	require.Len(t, history, 2)
	assert.Equal(t, e.Centroids(), history[1].Centroids)
	assert.Equal(t, e.Assignments(), history[1].Assignments)

	e.Reset()
	assert.Empty(t, e.Centroids())
	assert.Empty(t, e.Assignments())
	assert.Empty(t, e.History())

	_, err := e.Predict([]float64{1})
	assert.ErrorIs(t, err, kmeans.ErrNotInitialized)
}

func TestHistoryDoesNotAlias(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 2, Seed: 3})
	_, err := e.Step([][]float64{{0}, {2}, {10}, {12}})
	require.NoError(t, err)

	history := e.History()
	require.Len(t, history, 1)
	want := history[0].Centroids[0][0]
	history[0].Centroids[0][0] = 99
	history[0].Assignments[0] = 7

	again := e.History()
	assert.Equal(t, want, again[0].Centroids[0][0])
	assert.NotEqual(t, 7, again[0].Assignments[0])
}

func TestPredict(t *testing.T) {
	e := kmeans.New(kmeans.Config{K: 2, Seed: 3})
	runToConvergence(t, e, [][]float64{{0}, {2}, {10}, {12}})

	near, err := e.Predict([]float64{11.5})
	require.NoError(t, err)
	assert.InDelta(t, 11.0, e.Centroids()[near][0], 1e-12)

	_, err = e.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, kmeans.ErrDimensionMismatch)
}
