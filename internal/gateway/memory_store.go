package gateway

import (
	"context"
	"fmt"
	"sync"

	"receipt-processor/internal/domain"
	"receipt-processor/internal/usecase"
)

// MemoryStore is a process-lifetime ScoreStore backed by a map. It is safe
// for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	points map[string]int64
}

var _ usecase.ScoreStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{points: make(map[string]int64)}
}

// Put inserts a new (id, points) binding. Bindings are write-once.
func (s *MemoryStore) Put(_ context.Context, id string, points int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.points[id]; exists {
		return fmt.Errorf("score for receipt %s already recorded", id)
	}
	s.points[id] = points
	return nil
}

// Get returns the points bound to id, or domain.ErrReceiptNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points, ok := s.points[id]
	if !ok {
		return 0, domain.ErrReceiptNotFound
	}
	return points, nil
}
