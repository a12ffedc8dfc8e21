package history

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository bounded to a fixed number
// of records. Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.Mutex
	records []Record
	limit   int
}

// NewMemoryRepository creates a memory-backed repository keeping at most
// limit records.
func NewMemoryRepository(limit int) *MemoryRepository {
	if limit <= 0 {
		limit = 1
	}
	return &MemoryRepository{limit: limit}
}

// Save stores the record, evicting the oldest when over the limit.
func (r *MemoryRepository) Save(ctx context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	if len(r.records) > r.limit {
		r.records = r.records[len(r.records)-r.limit:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	out := make([]Record, 0, limit)
	for i := len(r.records) - 1; i >= len(r.records)-limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
