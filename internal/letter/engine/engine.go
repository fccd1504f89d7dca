// Package engine validates and applies lifecycle transitions. Apply is pure:
// given a committed snapshot and a command it returns either a new snapshot
// plus its audit record, or a typed rejection. The input snapshot is never
// mutated, so committed snapshots stay safe for lock-free reads.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lcflow/internal/audit"
	"lcflow/internal/document"
	"lcflow/internal/letter/models"
	"lcflow/internal/letter/ports"
	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

// Evidence carries whatever a given event requires: documents to attach for
// presentation, the payment amount for pay events, the reason for terminate.
type Evidence struct {
	Documents []document.Document
	Payment   *domain.Money
	Reason    string
}

// Command is one declared intent against a case.
type Command struct {
	Event    domain.Event
	Actor    domain.PartyID
	At       time.Time
	Evidence Evidence
}

// Outcome is a successful application: the new snapshot and its audit record.
type Outcome struct {
	Case   *models.Case
	Record audit.Record
}

// Engine applies the transition table under role, document, date, and amount
// preconditions. Construct once and share; Engine itself holds no case state.
type Engine struct {
	verifier       ports.HashVerifier
	terminateRoles map[domain.Role]bool
	logger         *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTerminatePolicy narrows which case roles may cancel a case. The default
// allows all four. Terminate authorization is policy, not table data.
func WithTerminatePolicy(roles []domain.Role) Option {
	return func(e *Engine) {
		e.terminateRoles = make(map[domain.Role]bool, len(roles))
		for _, r := range roles {
			e.terminateRoles[r] = true
		}
	}
}

func New(verifier ports.HashVerifier, opts ...Option) (*Engine, error) {
	if verifier == nil {
		return nil, fmt.Errorf("hash verifier is required")
	}
	e := &Engine{verifier: verifier}
	WithTerminatePolicy(domain.CaseRoles())(e)
	for _, opt := range opts {
		opt(e)
	}
	if len(e.terminateRoles) == 0 {
		return nil, fmt.Errorf("terminate policy cannot be empty")
	}
	return e, nil
}

// Apply checks the command against the snapshot and produces the outcome.
//
// Errors carry codes from pkg/domain-errors: CodeUnauthorized,
// CodeAlreadyInState, CodeInvalidTransition, CodePreconditionNotMet,
// CodeValidation, CodeTimeout when verification is cut short, and
// CodeInvariantViolation when the snapshot itself is corrupt.
func (e *Engine) Apply(ctx context.Context, snap *models.Case, cmd Command) (*Outcome, error) {
	if err := snap.CheckInvariants(); err != nil {
		return nil, err
	}
	if !cmd.Event.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unsupported event %q", cmd.Event)
	}
	if cmd.At.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "command timestamp is required")
	}

	role, ok := snap.Parties.RoleOf(cmd.Actor)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeUnauthorized, "party %s is not on case %s", cmd.Actor, snap.ID)
	}

	if cmd.Event == domain.EventAttachDocuments {
		return e.applyAttach(ctx, snap, cmd, role)
	}
	return e.applyTransition(ctx, snap, cmd, role)
}

func (e *Engine) applyTransition(ctx context.Context, snap *models.Case, cmd Command, role domain.Role) (*Outcome, error) {
	// Idempotent-retry detection comes before edge lookup so a duplicate
	// payment event reports "already in requested state" instead of
	// re-executing or reading as an illegal edge.
	if target, ok := models.TargetOf(cmd.Event); ok && snap.Status == target {
		return nil, dErrors.Newf(dErrors.CodeAlreadyInState, "case %s is already %s", snap.ID, target)
	}

	next, ok := snap.Status.Next(cmd.Event)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeInvalidTransition, "event %s is not legal from %s", cmd.Event, snap.Status)
	}

	if !e.roleAllowed(cmd.Event, role) {
		return nil, dErrors.Newf(dErrors.CodeUnauthorized, "%s may not drive %s", role, cmd.Event)
	}

	updated := snap.Clone()
	if err := e.checkAndStage(ctx, updated, cmd); err != nil {
		return nil, err
	}

	updated.Status = next
	updated.Version++
	updated.UpdatedAt = cmd.At

	if e.logger != nil {
		e.logger.InfoContext(ctx, "transition applied",
			"case_id", snap.ID,
			"event", cmd.Event,
			"from", snap.Status,
			"to", next,
			"actor", cmd.Actor,
		)
	}

	return &Outcome{
		Case: updated,
		Record: audit.Record{
			CaseID:    snap.ID,
			Seq:       updated.Version,
			FromState: snap.Status.String(),
			ToState:   next.String(),
			Event:     cmd.Event,
			Actor:     cmd.Actor,
			At:        cmd.At,
			Note:      cmd.Evidence.Reason,
		},
	}, nil
}

// applyAttach stages documents ahead of presentation. The lifecycle state
// does not move; only the document set and version change.
func (e *Engine) applyAttach(ctx context.Context, snap *models.Case, cmd Command, role domain.Role) (*Outcome, error) {
	if snap.Status != models.StatusIssued && snap.Status != models.StatusShipped {
		return nil, dErrors.Newf(dErrors.CodeInvalidTransition, "documents cannot be attached while case is %s", snap.Status)
	}
	if !e.roleAllowed(cmd.Event, role) {
		return nil, dErrors.Newf(dErrors.CodeUnauthorized, "%s may not attach documents", role)
	}
	if len(cmd.Evidence.Documents) == 0 {
		return nil, dErrors.New(dErrors.CodePreconditionNotMet, "no documents supplied")
	}

	updated := snap.Clone()
	if err := attachEvidence(updated, cmd.Evidence.Documents); err != nil {
		return nil, err
	}
	updated.Version++
	updated.UpdatedAt = cmd.At

	return &Outcome{
		Case: updated,
		Record: audit.Record{
			CaseID:    snap.ID,
			Seq:       updated.Version,
			FromState: snap.Status.String(),
			ToState:   snap.Status.String(),
			Event:     cmd.Event,
			Actor:     cmd.Actor,
			At:        cmd.At,
			Note:      fmt.Sprintf("%d document(s) staged", len(cmd.Evidence.Documents)),
		},
	}, nil
}

func (e *Engine) roleAllowed(event domain.Event, role domain.Role) bool {
	if event == domain.EventTerminate {
		return e.terminateRoles[role]
	}
	for _, allowed := range models.RolesFor(event) {
		if allowed == role {
			return true
		}
	}
	return false
}
