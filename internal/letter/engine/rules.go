package engine

import (
	"context"
	"time"

	"lcflow/internal/document"
	"lcflow/internal/letter/models"
	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

// checkAndStage enforces the event-specific preconditions and stages the
// resulting field changes on the cloned snapshot. Status and Version are the
// caller's job.
func (e *Engine) checkAndStage(ctx context.Context, updated *models.Case, cmd Command) error {
	switch cmd.Event {
	case domain.EventIssue:
		// Terms were validated at application and re-checked by the
		// invariant pass; issuance needs the credit still open.
		if dateUTC(cmd.At).After(dateUTC(updated.Terms.ExpiryDate)) {
			return dErrors.Newf(dErrors.CodePreconditionNotMet,
				"credit expired %s, cannot issue at %s", updated.Terms.ExpiryDate.Format(dateLayout), cmd.At.Format(dateLayout))
		}
		return nil

	case domain.EventShip:
		if dateUTC(cmd.At).After(dateUTC(updated.Terms.LatestShipment)) {
			return dErrors.Newf(dErrors.CodePreconditionNotMet,
				"shipment at %s is after latest shipment date %s",
				cmd.At.Format(dateLayout), updated.Terms.LatestShipment.Format(dateLayout))
		}
		shipped := cmd.At
		updated.ShipmentDate = &shipped
		return nil

	case domain.EventPresentDocuments:
		return e.checkPresentation(ctx, updated, cmd)

	case domain.EventPayBeneficiary:
		if cmd.Evidence.Payment == nil {
			return dErrors.New(dErrors.CodePreconditionNotMet, "payment amount evidence is required")
		}
		if !cmd.Evidence.Payment.Equal(updated.Terms.Amount) {
			return dErrors.Newf(dErrors.CodePreconditionNotMet,
				"payment %s does not match credit amount %s", *cmd.Evidence.Payment, updated.Terms.Amount)
		}
		return nil

	case domain.EventPayAdvising, domain.EventPayIssuer:
		// Role authorization is the only gate for the settlement legs.
		return nil

	case domain.EventTerminate:
		updated.TerminationReason = cmd.Evidence.Reason
		return nil
	}

	return dErrors.Newf(dErrors.CodeValidation, "unsupported event %q", cmd.Event)
}

// checkPresentation attaches any evidence documents, then requires the set to
// be complete, hash-verified, and inside the closed presentation window
// [shipmentDate, shipmentDate + presentation period].
func (e *Engine) checkPresentation(ctx context.Context, updated *models.Case, cmd Command) error {
	if err := attachEvidence(updated, cmd.Evidence.Documents); err != nil {
		return err
	}

	if !updated.Documents.Complete() {
		missing := updated.Documents.MissingKinds()
		return dErrors.Newf(dErrors.CodePreconditionNotMet, "presentation incomplete, missing %v", missing)
	}

	// Shipment date presence is guaranteed by the invariant pass for
	// StatusShipped, the only state with a present_documents edge.
	days := daysBetween(*updated.ShipmentDate, cmd.At)
	if days < 0 {
		return dErrors.New(dErrors.CodePreconditionNotMet, "documents cannot be presented before shipment")
	}
	if days > updated.Terms.PresentationDays {
		return dErrors.Newf(dErrors.CodePreconditionNotMet,
			"presented %d days after shipment, window is %d days", days, updated.Terms.PresentationDays)
	}

	return e.verifyDocuments(ctx, updated.Documents.LiveDocuments())
}

func attachEvidence(updated *models.Case, docs []document.Document) error {
	for _, doc := range docs {
		grown, err := updated.Documents.Attach(doc)
		if err != nil {
			return err
		}
		updated.Documents = grown
	}
	return nil
}

const dateLayout = "2006-01-02"

// dateUTC truncates to the UTC calendar day; all window comparisons happen at
// day granularity with closed intervals.
func dateUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateUTC(to).Sub(dateUTC(from)) / (24 * time.Hour))
}
