package repository

import (
	"context"
	"sync"

	"loan-approval/domain"
)

const DefaultDecisionLogSize = 1000

// DecisionRepositoryMemory keeps the most recent decisions for the lifetime
// of the process. Once maxSize is reached the oldest record is dropped.
type DecisionRepositoryMemory struct {
	mu      sync.RWMutex
	maxSize int
	data    []domain.DecisionRecord
}

// NewDecisionRepositoryMemory creates a new in-memory decision log.
func NewDecisionRepositoryMemory(maxSize int) *DecisionRepositoryMemory {
	if maxSize <= 0 {
		maxSize = DefaultDecisionLogSize
	}
	return &DecisionRepositoryMemory{
		maxSize: maxSize,
		data:    []domain.DecisionRecord{},
	}
}

// Save appends the record to the log.
func (r *DecisionRepositoryMemory) Save(
	_ context.Context,
	record domain.DecisionRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) >= r.maxSize {
		r.data = append(r.data[:0], r.data[1:]...)
	}
	r.data = append(r.data, record)
	return nil
}

// List returns a copy of the log, oldest first.
func (r *DecisionRepositoryMemory) List(_ context.Context) ([]domain.DecisionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.DecisionRecord(nil), r.data...), nil
}
