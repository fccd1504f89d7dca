// Package ports declares the collaborator interfaces of the letter lifecycle
// core. Interface-driven boundaries keep the engine and registry testable and
// let deployments swap in-memory, ledger-backed, or external implementations
// without rewiring business code.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"lcflow/internal/document"
	"lcflow/internal/letter/models"
	"lcflow/pkg/domain"
)

// HashVerifier checks a document's content against its integrity reference.
// The default implementation recomputes the hash in process; ledger or notary
// deployments verify against external storage. Implementations must honor
// ctx cancellation, since verification may suspend on I/O.
type HashVerifier interface {
	VerifyHash(ctx context.Context, doc document.Document) (bool, error)
}

// CaseStore persists the latest committed snapshot per case.
type CaseStore interface {
	Create(ctx context.Context, c *models.Case) error
	Get(ctx context.Context, id domain.CaseID) (*models.Case, error)
	Update(ctx context.Context, c *models.Case) error
}
