// Package models holds the letter-of-credit case aggregate: terms, parties,
// lifecycle status, and the transition table the engine enforces.
package models

import (
	"lcflow/pkg/domain"
)

// Status is the single authoritative lifecycle field of a case. One enum
// replaces independent issued/shipped/paid booleans so invalid combinations
// are not representable.
type Status string

const (
	StatusApplied            Status = "applied"
	StatusIssued             Status = "issued"
	StatusShipped            Status = "shipped"
	StatusDocumentsPresented Status = "documents_presented"
	StatusBeneficiaryPaid    Status = "beneficiary_paid"
	StatusAdvisingPaid       Status = "advising_paid"
	StatusIssuerPaid         Status = "issuer_paid"
	StatusTerminated         Status = "terminated"
)

// ForwardChain is the strictly-forward order of non-terminal progress.
// Committed state sequences are subsequences of this chain, optionally ending
// at StatusTerminated.
var ForwardChain = []Status{
	StatusApplied,
	StatusIssued,
	StatusShipped,
	StatusDocumentsPresented,
	StatusBeneficiaryPaid,
	StatusAdvisingPaid,
	StatusIssuerPaid,
}

// transitions is the single source of truth for legal lifecycle edges.
// EventTerminate is legal from every non-terminal state and handled in Next.
var transitions = map[Status]map[domain.Event]Status{
	StatusApplied:            {domain.EventIssue: StatusIssued},
	StatusIssued:             {domain.EventShip: StatusShipped},
	StatusShipped:            {domain.EventPresentDocuments: StatusDocumentsPresented},
	StatusDocumentsPresented: {domain.EventPayBeneficiary: StatusBeneficiaryPaid},
	StatusBeneficiaryPaid:    {domain.EventPayAdvising: StatusAdvisingPaid},
	StatusAdvisingPaid:       {domain.EventPayIssuer: StatusIssuerPaid},
}

// eventTargets maps each transition event to the state it lands in, for
// idempotent-retry detection.
var eventTargets = map[domain.Event]Status{
	domain.EventIssue:            StatusIssued,
	domain.EventShip:             StatusShipped,
	domain.EventPresentDocuments: StatusDocumentsPresented,
	domain.EventPayBeneficiary:   StatusBeneficiaryPaid,
	domain.EventPayAdvising:      StatusAdvisingPaid,
	domain.EventPayIssuer:        StatusIssuerPaid,
	domain.EventTerminate:        StatusTerminated,
}

// eventRoles maps each transition event to the case roles allowed to drive
// it. EventTerminate is absent: its role set is configured policy.
var eventRoles = map[domain.Event][]domain.Role{
	domain.EventIssue:            {domain.RoleIssuingBank},
	domain.EventShip:             {domain.RoleAdvisingBank, domain.RoleBeneficiary},
	domain.EventPresentDocuments: {domain.RoleBeneficiary, domain.RoleAdvisingBank},
	domain.EventPayBeneficiary:   {domain.RoleAdvisingBank, domain.RoleIssuingBank},
	domain.EventPayAdvising:      {domain.RoleIssuingBank},
	domain.EventPayIssuer:        {domain.RoleApplicant},
	domain.EventAttachDocuments:  {domain.RoleBeneficiary, domain.RoleAdvisingBank},
}

// Terminal reports whether no transition leaves this state.
func (s Status) Terminal() bool {
	return s == StatusIssuerPaid || s == StatusTerminated
}

// Next resolves the target state of an event from this state. ok is false
// when the edge is not declared.
func (s Status) Next(event domain.Event) (Status, bool) {
	if event == domain.EventTerminate {
		if s.Terminal() {
			return "", false
		}
		return StatusTerminated, true
	}
	next, ok := transitions[s][event]
	return next, ok
}

// TargetOf returns the state an event lands in, independent of the current
// state. ok is false for non-transition events.
func TargetOf(event domain.Event) (Status, bool) {
	t, ok := eventTargets[event]
	return t, ok
}

// RolesFor returns the case roles allowed to drive an event. EventTerminate
// returns nil; the terminate role set is policy, not table data.
func RolesFor(event domain.Event) []domain.Role {
	return eventRoles[event]
}

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusIssued, StatusShipped, StatusDocumentsPresented,
		StatusBeneficiaryPaid, StatusAdvisingPaid, StatusIssuerPaid, StatusTerminated:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
