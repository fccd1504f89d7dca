package audit

import "context"

// Worker consumes audit records from a channel and persists them. It keeps
// background fan-out to secondary sinks testable without wiring a broker.
type Worker struct {
	store Store
	inbox <-chan Record
}

func NewWorker(store Store, inbox <-chan Record) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record := <-w.inbox:
			if err := w.store.Append(ctx, record); err != nil {
				return err
			}
		}
	}
}
