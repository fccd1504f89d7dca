package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcflow/pkg/domain"
)

func TestTransitionTable_ForwardOnly(t *testing.T) {
	// Every declared non-terminate edge moves exactly one step along the
	// forward chain; no edge revisits or skips a state.
	index := make(map[Status]int, len(ForwardChain))
	for i, s := range ForwardChain {
		index[s] = i
	}

	for from, edges := range transitions {
		for event, to := range edges {
			require.Containsf(t, index, from, "state %s missing from forward chain", from)
			require.Containsf(t, index, to, "state %s missing from forward chain", to)
			assert.Equalf(t, index[from]+1, index[to],
				"edge %s --%s--> %s must advance exactly one state", from, event, to)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []Status{StatusIssuerPaid, StatusTerminated} {
		assert.True(t, terminal.Terminal())
		for event := range eventTargets {
			_, ok := terminal.Next(event)
			assert.Falsef(t, ok, "terminal state %s must reject %s", terminal, event)
		}
	}
}

func TestTerminateReachableFromEveryNonTerminalState(t *testing.T) {
	for _, from := range ForwardChain {
		if from.Terminal() {
			continue
		}
		to, ok := from.Next(domain.EventTerminate)
		require.Truef(t, ok, "terminate must be legal from %s", from)
		assert.Equal(t, StatusTerminated, to)
	}
}

func TestTargetOf(t *testing.T) {
	for event, want := range eventTargets {
		got, ok := TargetOf(event)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := TargetOf(domain.EventAttachDocuments)
	assert.False(t, ok, "staged attachment is not a transition")
}

// TestRandomWalksStayOnForwardChain drives random event sequences through the
// table: every accepted sequence must be a strictly-forward subsequence of the
// chain, optionally ending at StatusTerminated.
func TestRandomWalksStayOnForwardChain(t *testing.T) {
	index := make(map[Status]int, len(ForwardChain))
	for i, s := range ForwardChain {
		index[s] = i
	}

	events := make([]domain.Event, 0, len(eventTargets))
	for event := range eventTargets {
		events = append(events, event)
	}

	rng := rand.New(rand.NewSource(1))
	for walk := 0; walk < 200; walk++ {
		current := StatusApplied
		for step := 0; step < 12 && !current.Terminal(); step++ {
			event := events[rng.Intn(len(events))]
			next, ok := current.Next(event)
			if !ok {
				continue
			}
			if next == StatusTerminated {
				current = next
				break
			}
			require.Equalf(t, index[current]+1, index[next],
				"walk %d: %s --%s--> %s left the forward chain", walk, current, event, next)
			current = next
		}
	}
}

func TestRolesFor(t *testing.T) {
	assert.Equal(t, []domain.Role{domain.RoleIssuingBank}, RolesFor(domain.EventIssue))
	assert.ElementsMatch(t, []domain.Role{domain.RoleAdvisingBank, domain.RoleBeneficiary}, RolesFor(domain.EventShip))
	assert.Equal(t, []domain.Role{domain.RoleApplicant}, RolesFor(domain.EventPayIssuer))
	assert.Nil(t, RolesFor(domain.EventTerminate), "terminate roles come from policy")
}
