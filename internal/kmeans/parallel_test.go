package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhamSaiSamal/FlowLogic/internal/parallel"
)

func TestStep_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([][]float64, 3000)
	for i := range data {
		center := float64(i%3) * 20
		data[i] = []float64{center + rng.Float64(), center - rng.Float64()}
	}

	par := New(Config{K: 3, Seed: 4})
	par.parallel = parallel.Config{Workers: 4, MinChunk: 16}
	seq := New(Config{K: 3, Seed: 4})
	seq.parallel = parallel.Config{Workers: 1}

	for range 50 {
		a, err := par.Step(data)
		require.NoError(t, err)
		b, err := seq.Step(data)
		require.NoError(t, err)

		require.Equal(t, b, a)
		if !a.Moved {
			break
		}
	}

	assert.Equal(t, seq.Centroids(), par.Centroids())
	assert.Equal(t, seq.Assignments(), par.Assignments())
}
