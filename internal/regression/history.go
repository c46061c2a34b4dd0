package regression

import "github.com/SubhamSaiSamal/FlowLogic/internal/ring"

// DefaultHistoryLimit is the number of snapshots a model keeps when its
// Config leaves HistoryLimit at zero.
const DefaultHistoryLimit = 5000

// Snapshot records the parameters after one step and the loss that step
// measured.
type Snapshot struct {
	Weights []float64
	Bias    float64
	Loss    float64
}

func (s Snapshot) clone() Snapshot {
	s.Weights = append([]float64(nil), s.Weights...)
	return s
}

// History is a bounded ring of snapshots; once full, each append evicts
// the oldest entry.
type History = ring.Buffer[Snapshot]

// NewHistory creates an empty history holding at most limit snapshots.
// A non-positive limit selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return ring.New[Snapshot](limit)
}
