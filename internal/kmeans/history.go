package kmeans

import "github.com/SubhamSaiSamal/FlowLogic/internal/ring"

// DefaultHistoryLimit is the number of snapshots an engine keeps when its
// Config leaves HistoryLimit at zero.
const DefaultHistoryLimit = 5000

// Snapshot records the state after one step.
type Snapshot struct {
	Centroids   [][]float64
	Assignments []int
	Inertia     float64
}

func (s Snapshot) clone() Snapshot {
	centroids := make([][]float64, len(s.Centroids))
	for c, centroid := range s.Centroids {
		centroids[c] = clonePoint(centroid)
	}
	s.Centroids = centroids
	s.Assignments = append([]int(nil), s.Assignments...)
	return s
}

// History is a bounded ring of snapshots.
type History = ring.Buffer[Snapshot]

// NewHistory creates an empty history holding at most limit snapshots.
// A non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return ring.New[Snapshot](limit)
}
