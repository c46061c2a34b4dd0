package train

import (
	"sync"

	"github.com/SubhamSaiSamal/FlowLogic/internal/ring"
)

// DefaultJournalLimit is the number of records a journal keeps.
const DefaultJournalLimit = 50

// Journal keeps the most recent run records in memory. It is safe for
// concurrent use.
type Journal struct {
	mu      sync.Mutex
	records *ring.Buffer[Record]
}

// NewJournal creates a journal holding at most limit records. A
// non-positive limit selects DefaultJournalLimit.
func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	return &Journal{records: ring.New[Record](limit)}
}

// Add stores rec, evicting the oldest record when full.
func (j *Journal) Add(rec Record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records.Append(rec)
}

// Records returns the stored records from oldest to newest.
func (j *Journal) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.records.Values()
}

// Latest returns the most recent record.
func (j *Journal) Latest() (Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.records.Last()
}

// Len returns the number of stored records.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.records.Len()
}
