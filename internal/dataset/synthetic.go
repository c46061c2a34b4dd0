package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// Built-in dataset identifiers.
const (
	StudyScoresID      = "study-scores"
	CustomerSegmentsID = "customer-segments"
	NoisySineID        = "noisy-sine"
)

// NoisySineSize is the number of points NoisySine produces for the
// built-in registry.
const NoisySineSize = 30

var segmentCenters = [][]float64{{2, 2, 2}, {6, 6, 6}, {2, 8, 4}}

// StudyScores generates 50 points of exam score against study hours:
// score = 20 + 7*hours + uniform noise in [-5, 5).
func StudyScores(rng *rand.Rand) Dataset {
	points := make([]DataPoint, 50)
	for i := range points {
		hours := rng.Float64() * 10
		noise := (rng.Float64() - 0.5) * 10
		points[i] = Labeled(i, []float64{hours}, 20+7*hours+noise)
	}

	return Dataset{
		ID:           StudyScoresID,
		Name:         "Study Hours vs Scores",
		Kind:         KindRegression,
		Description:  "Predict student scores based on study hours.",
		FeatureNames: []string{"Hours"},
		Points:       points,
	}
}

// CustomerSegments generates 90 points in three 3-D blobs of 30. Labels
// hold the generating blob index so clusterings can be compared.
func CustomerSegments(rng *rand.Rand) Dataset {
	points := make([]DataPoint, 90)
	for i := range points {
		cluster := i / 30
		center := segmentCenters[cluster]
		features := make([]float64, len(center))
		for d, c := range center {
			features[d] = c + (rng.Float64()-0.5)*2
		}
		points[i] = Labeled(i, features, float64(cluster))
	}

	return Dataset{
		ID:           CustomerSegmentsID,
		Name:         "Customer Segments (3D)",
		Kind:         KindClustering,
		Description:  "Unsupervised grouping of customers based on 3 metrics.",
		FeatureNames: []string{"Age", "Spend", "Activity"},
		Points:       points,
	}
}

// NoisySine samples n points of sin(x) on [0, 2π] with uniform noise in
// [-0.4, 0.4). The single feature is the raw x.
func NoisySine(rng *rand.Rand, n int) Dataset {
	points := make([]DataPoint, n)
	for i := range points {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1) * 2 * math.Pi
		}
		y := math.Sin(x) + (rng.Float64()-0.5)*0.8
		points[i] = Labeled(i, []float64{x}, y)
	}

	return Dataset{
		ID:           NoisySineID,
		Name:         "Noisy Sine",
		Kind:         KindRegression,
		Description:  "A sine wave with noise, for fitting polynomials of growing degree.",
		FeatureNames: []string{"x"},
		Points:       points,
	}
}

// Builtin returns every built-in dataset generated from seed.
func Builtin(seed int64) []Dataset {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic synthetic data
	return []Dataset{
		StudyScores(rng),
		CustomerSegments(rng),
		NoisySine(rng, NoisySineSize),
	}
}

// Lookup returns the built-in dataset with the given id.
func Lookup(id string, seed int64) (Dataset, error) {
	for _, d := range Builtin(seed) {
		if d.ID == id {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, id)
}
