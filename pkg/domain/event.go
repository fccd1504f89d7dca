package domain

import dErrors "lcflow/pkg/domain-errors"

// Event names the lifecycle intent declared by the external API layer.
// Invariant: the value must be one of the supported events.
//
// Usage: construct via ParseEvent at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Event string

// Supported lifecycle events.
const (
	EventIssue            Event = "issue"
	EventShip             Event = "ship"
	EventPresentDocuments Event = "present_documents"
	EventPayBeneficiary   Event = "pay_beneficiary"
	EventPayAdvising      Event = "pay_advising"
	EventPayIssuer        Event = "pay_issuer"
	EventTerminate        Event = "terminate"

	// EventAttachDocuments stages trade documents on a case ahead of
	// presentation. It never moves the lifecycle state.
	EventAttachDocuments Event = "attach_documents"
)

// validEvents is the single source of truth for valid lifecycle events.
var validEvents = map[Event]bool{
	EventIssue:            true,
	EventShip:             true,
	EventPresentDocuments: true,
	EventPayBeneficiary:   true,
	EventPayAdvising:      true,
	EventPayIssuer:        true,
	EventTerminate:        true,
	EventAttachDocuments:  true,
}

// ParseEvent constructs an Event from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseEvent(s string) (Event, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "event cannot be empty")
	}
	e := Event(s)
	if !e.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unsupported event %q", s)
	}
	return e, nil
}

// IsValid checks if the event is one of the supported enum values.
func (e Event) IsValid() bool {
	return validEvents[e]
}

func (e Event) String() string {
	return string(e)
}
