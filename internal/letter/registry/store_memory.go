package registry

import (
	"context"
	"sync"

	"lcflow/internal/letter/models"
	"lcflow/pkg/domain"
	"lcflow/pkg/platform/sentinel"
)

// InMemoryCaseStore keeps the latest committed snapshot per case in process.
// It favors clarity over performance. Snapshots cross the boundary as clones
// in both directions so no caller can alias store-owned state.
type InMemoryCaseStore struct {
	mu    sync.RWMutex
	cases map[domain.CaseID]*models.Case
}

func NewInMemoryCaseStore() *InMemoryCaseStore {
	return &InMemoryCaseStore{cases: make(map[domain.CaseID]*models.Case)}
}

func (s *InMemoryCaseStore) Create(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; exists {
		return sentinel.ErrConflict
	}
	s.cases[c.ID] = c.Clone()
	return nil
}

func (s *InMemoryCaseStore) Get(_ context.Context, id domain.CaseID) (*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c.Clone(), nil
}

func (s *InMemoryCaseStore) Update(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; !exists {
		return sentinel.ErrNotFound
	}
	s.cases[c.ID] = c.Clone()
	return nil
}

// Len reports the number of registered cases, terminal ones included.
func (s *InMemoryCaseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cases)
}
