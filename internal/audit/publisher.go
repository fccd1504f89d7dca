package audit

import (
	"context"
	"time"

	"lcflow/pkg/domain"
)

// Store is the append-only persistence port for audit records.
type Store interface {
	Append(ctx context.Context, record Record) error
	ListByCase(ctx context.Context, caseID domain.CaseID) ([]Record, error)
}

// Publisher captures structured audit records. It is append-only and uses the
// store port for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, record Record) error {
	if record.At.IsZero() {
		record.At = time.Now()
	}
	return p.store.Append(ctx, record)
}

func (p *Publisher) List(ctx context.Context, caseID domain.CaseID) ([]Record, error) {
	return p.store.ListByCase(ctx, caseID)
}
