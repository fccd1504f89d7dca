package document

import (
	"context"
)

// RehashVerifier is the in-process verification collaborator: it recomputes
// the canonical content hash and compares it to the document's integrity
// reference. Deployments backed by an external notary or ledger supply their
// own implementation of the same contract.
type RehashVerifier struct{}

func NewRehashVerifier() RehashVerifier {
	return RehashVerifier{}
}

// VerifyHash reports whether the document's stored hash matches its content.
// It respects caller cancellation so a fired timeout aborts verification.
func (RehashVerifier) VerifyHash(ctx context.Context, doc Document) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	computed, err := doc.ComputeHash()
	if err != nil {
		return false, err
	}
	return computed == doc.Hash, nil
}
