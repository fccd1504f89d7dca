package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcflow/pkg/domain"
)

func TestPublisher_AppendOnlyOrder(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	pub := NewPublisher(store)
	caseID := domain.NewCaseID()

	for i := 1; i <= 3; i++ {
		require.NoError(t, pub.Emit(ctx, Record{
			CaseID:    caseID,
			Seq:       uint64(i + 1),
			FromState: "applied",
			ToState:   "issued",
			Event:     domain.EventIssue,
			Actor:     domain.NewPartyID(),
			At:        time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC),
		}))
	}

	history, err := pub.List(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, r := range history {
		assert.Equal(t, uint64(i+2), r.Seq, "records keep emission order")
	}

	// Mutating the returned slice must not touch the stored history.
	history[0].ToState = "tampered"
	fresh, err := pub.List(ctx, caseID)
	require.NoError(t, err)
	assert.Equal(t, "issued", fresh[0].ToState)
}

func TestPublisher_StampsMissingTimestamp(t *testing.T) {
	ctx := context.Background()
	pub := NewPublisher(NewInMemoryStore())
	caseID := domain.NewCaseID()

	require.NoError(t, pub.Emit(ctx, Record{CaseID: caseID, Event: domain.EventIssue}))
	history, err := pub.List(ctx, caseID)
	require.NoError(t, err)
	assert.False(t, history[0].At.IsZero())
}

func TestWorker_DrainsInboxUntilCancelled(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Record)
	worker := NewWorker(store, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	caseID := domain.NewCaseID()
	inbox <- Record{CaseID: caseID, Event: domain.EventShip, At: time.Now()}
	inbox <- Record{CaseID: caseID, Event: domain.EventTerminate, At: time.Now()}

	assert.Eventually(t, func() bool {
		history, err := store.ListByCase(context.Background(), caseID)
		return err == nil && len(history) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRecord_Transition(t *testing.T) {
	assert.True(t, Record{FromState: "applied", ToState: "issued"}.Transition())
	assert.False(t, Record{FromState: "issued", ToState: "issued"}.Transition())
}
