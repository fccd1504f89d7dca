// Package domain holds the shared value types of the letter-of-credit core:
// typed identifiers, event and role enums, and the immutable trade
// descriptors (Money, Party, Port, PricedGood). Values here carry no
// ownership semantics and are freely copied.
package domain

import (
	"github.com/google/uuid"

	dErrors "lcflow/pkg/domain-errors"
)

// Typed IDs prevent cross-type assignment at compile time: a PartyID can
// never be handed to a function expecting a CaseID.
//
// Usage: construct via the Parse helpers at trust boundaries; direct casting
// bypasses validation.
type (
	// CaseID identifies one letter-of-credit case. Assigned at
	// application time, immutable afterwards.
	CaseID uuid.UUID

	// PartyID is the opaque identity reference for a trade party.
	PartyID uuid.UUID

	// DocumentID identifies one immutable trade document. Corrections get
	// a fresh DocumentID superseding the old one.
	DocumentID uuid.UUID
)

func NewCaseID() CaseID         { return CaseID(uuid.New()) }
func NewPartyID() PartyID       { return PartyID(uuid.New()) }
func NewDocumentID() DocumentID { return DocumentID(uuid.New()) }

func (id CaseID) String() string     { return uuid.UUID(id).String() }
func (id PartyID) String() string    { return uuid.UUID(id).String() }
func (id DocumentID) String() string { return uuid.UUID(id).String() }

func (id CaseID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id PartyID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id DocumentID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// ParseCaseID constructs a CaseID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not a UUID.
func ParseCaseID(s string) (CaseID, error) {
	u, err := parseUUID(s, "case id")
	return CaseID(u), err
}

// ParsePartyID constructs a PartyID from external input.
func ParsePartyID(s string) (PartyID, error) {
	u, err := parseUUID(s, "party id")
	return PartyID(u), err
}

// ParseDocumentID constructs a DocumentID from external input.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID(s, "document id")
	return DocumentID(u), err
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", what)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be the nil uuid", what)
	}
	return u, nil
}
