package audit

import (
	"context"
	"sync"

	"lcflow/pkg/domain"
)

// InMemoryStore keeps per-case histories in process. It favors clarity over
// performance and copies on read so callers never alias the history slice.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[domain.CaseID][]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[domain.CaseID][]Record)}
}

func (s *InMemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.CaseID] = append(s.records[record.CaseID], record)
	return nil
}

func (s *InMemoryStore) ListByCase(_ context.Context, caseID domain.CaseID) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records[caseID]...), nil
}
