// Package audit records the committed history of letter-of-credit cases. The
// history is append-only: reconstruction and replay depend on records never
// being rewritten.
package audit

import (
	"time"

	"lcflow/pkg/domain"
)

// Record is one committed engine outcome. Keep it transport-agnostic so
// stores and sinks can fan out.
//
// Seq equals the case Version the record produced; FromState == ToState marks
// a staged document attachment rather than a lifecycle transition.
type Record struct {
	CaseID    domain.CaseID  `json:"caseId"`
	Seq       uint64         `json:"seq"`
	FromState string         `json:"fromState"`
	ToState   string         `json:"toState"`
	Event     domain.Event   `json:"event"`
	Actor     domain.PartyID `json:"actor"`
	At        time.Time      `json:"at"`
	Note      string         `json:"note,omitempty"`
}

// Transition reports whether the record moved the lifecycle state.
func (r Record) Transition() bool {
	return r.FromState != r.ToState
}
