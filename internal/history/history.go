// Package history stores recent calculation results so the UI can show a
// per-session history list. Saving is best-effort: a failed save never
// fails the calculation that produced it.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one stored calculation.
type Record struct {
	ID         string      `json:"id"`
	Calculator string      `json:"calculator"`
	Result     interface{} `json:"result"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// NewRecord builds a Record with a fresh ID and timestamp.
func NewRecord(calculator string, result interface{}) Record {
	return Record{
		ID:         uuid.NewString(),
		Calculator: calculator,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
}

// Repository stores and lists calculation records, newest first.
type Repository interface {
	Save(ctx context.Context, record Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}
