package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"lcflow/internal/document"
	dErrors "lcflow/pkg/domain-errors"
)

// verifyDocuments checks every live document against its integrity reference
// in parallel with shared cancellation. Verification may suspend on external
// storage, so a caller-supplied timeout that fires mid-verification aborts
// the whole attempt; the snapshot under construction is discarded, never
// committed.
func (e *Engine) verifyDocuments(ctx context.Context, docs []document.Document) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			ok, err := e.verifier.VerifyHash(ctx, doc)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return dErrors.Wrap(err, dErrors.CodeTimeout, "document verification aborted")
				}
				return dErrors.Wrap(err, dErrors.CodeInternal, "document verification failed")
			}
			if !ok {
				return dErrors.Newf(dErrors.CodePreconditionNotMet,
					"%s %s failed hash verification", doc.Kind, doc.ID)
			}
			return nil
		})
	}

	return g.Wait()
}
