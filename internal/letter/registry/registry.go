// Package registry is the process-wide serialization point of the lifecycle
// core: lookup from case ID to the latest committed snapshot, submission of
// lifecycle commands, and the append-only audit history. Each case is an
// independently lockable unit of work; unrelated cases proceed fully in
// parallel.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"lcflow/internal/audit"
	"lcflow/internal/letter/engine"
	"lcflow/internal/letter/metrics"
	"lcflow/internal/letter/models"
	"lcflow/internal/letter/ports"
	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
	"lcflow/pkg/platform/sentinel"
)

// Registry coordinates submissions. The store holds the latest committed
// snapshot per case; the audit publisher holds the history.
type Registry struct {
	engine  *engine.Engine
	store   ports.CaseStore
	audit   *audit.Publisher
	logger  *slog.Logger
	metrics *metrics.Metrics

	// submitWait bounds lock acquisition when the caller's context has no
	// deadline of its own: a busy case yields an explicit retry signal
	// instead of unbounded queueing.
	submitWait time.Duration

	mu          sync.Mutex
	locks       map[domain.CaseID]*semaphore.Weighted
	quarantined map[domain.CaseID]error
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithSubmitWait overrides the default bound on waiting for a busy case.
func WithSubmitWait(d time.Duration) Option {
	return func(r *Registry) {
		r.submitWait = d
	}
}

const defaultSubmitWait = 2 * time.Second

func New(eng *engine.Engine, store ports.CaseStore, auditPub *audit.Publisher, opts ...Option) (*Registry, error) {
	if eng == nil {
		return nil, fmt.Errorf("transition engine is required")
	}
	if store == nil {
		return nil, fmt.Errorf("case store is required")
	}
	if auditPub == nil {
		return nil, fmt.Errorf("audit publisher is required")
	}
	r := &Registry{
		engine:      eng,
		store:       store,
		audit:       auditPub,
		submitWait:  defaultSubmitWait,
		locks:       make(map[domain.CaseID]*semaphore.Weighted),
		quarantined: make(map[domain.CaseID]error),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Open registers a freshly applied case.
//
// Errors: CodeConflict when the ID is already registered, CodeValidation or
// CodeInvariantViolation for a malformed case.
func (r *Registry) Open(ctx context.Context, c *models.Case) error {
	if err := c.CheckInvariants(); err != nil {
		return err
	}
	if c.Status != models.StatusApplied {
		return dErrors.Newf(dErrors.CodeValidation, "cases open in %s, got %s", models.StatusApplied, c.Status)
	}
	if err := r.store.Create(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.Newf(dErrors.CodeConflict, "case %s already registered", c.ID)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register case")
	}
	if r.metrics != nil {
		r.metrics.IncOpenCases()
	}
	return nil
}

// Get returns the latest committed snapshot. Snapshots are immutable, so the
// read is lock-free with respect to in-flight submissions.
func (r *Registry) Get(ctx context.Context, caseID domain.CaseID) (*models.Case, error) {
	snap, err := r.store.Get(ctx, caseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "case %s not found", caseID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	return snap, nil
}

// Submit validates and applies one command under the case's exclusive
// section, holding it for the full validate+apply+commit duration. At most
// one transition per case is in flight; the loser of a race gets
// CodeCaseBusy once the wait bound passes.
func (r *Registry) Submit(ctx context.Context, caseID domain.CaseID, cmd engine.Command) (*models.Case, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.submitWait)
		defer cancel()
	}

	lock := r.lockFor(caseID)
	waitStart := time.Now()
	if err := lock.Acquire(ctx, 1); err != nil {
		r.countRejection(dErrors.CodeCaseBusy)
		return nil, dErrors.Wrap(err, dErrors.CodeCaseBusy, "case busy, retry")
	}
	defer lock.Release(1)
	if r.metrics != nil {
		r.metrics.ObserveSubmitWait(time.Since(waitStart))
	}

	if fatal := r.quarantineErr(caseID); fatal != nil {
		return nil, fatal
	}

	snap, err := r.Get(ctx, caseID)
	if err != nil {
		r.countRejection(dErrors.CodeOf(err))
		return nil, err
	}

	outcome, err := r.engine.Apply(ctx, snap, cmd)
	if err != nil {
		r.reject(ctx, caseID, err)
		return nil, err
	}

	if err := r.store.Update(ctx, outcome.Case); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit snapshot")
	}
	if err := r.audit.Emit(ctx, outcome.Record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to append audit record")
	}

	if r.metrics != nil {
		r.metrics.IncrementTransitions(cmd.Event.String())
		if outcome.Case.Status.Terminal() {
			r.metrics.DecOpenCases()
		}
	}
	return outcome.Case, nil
}

// History returns the ordered audit records of a case: one per committed
// submission, append-only.
func (r *Registry) History(ctx context.Context, caseID domain.CaseID) ([]audit.Record, error) {
	if _, err := r.Get(ctx, caseID); err != nil {
		return nil, err
	}
	return r.audit.List(ctx, caseID)
}

// reject accounts for a failed submission. An invariant violation marks the
// case quarantined: further submissions fail fast until an operator steps in.
func (r *Registry) reject(ctx context.Context, caseID domain.CaseID, err error) {
	code := dErrors.CodeOf(err)
	r.countRejection(code)
	if !code.Fatal() {
		return
	}

	r.mu.Lock()
	r.quarantined[caseID] = err
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.ErrorContext(ctx, "case quarantined, operator attention required",
			"case_id", caseID,
			"error", err,
		)
	}
}

func (r *Registry) quarantineErr(caseID domain.CaseID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quarantined[caseID]
}

func (r *Registry) lockFor(caseID domain.CaseID) *semaphore.Weighted {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[caseID]
	if !ok {
		lock = semaphore.NewWeighted(1)
		r.locks[caseID] = lock
	}
	return lock
}

func (r *Registry) countRejection(code dErrors.Code) {
	if r.metrics != nil {
		r.metrics.IncrementRejections(string(code))
	}
}
