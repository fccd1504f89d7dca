package domain

import dErrors "lcflow/pkg/domain-errors"

// Party is an opaque identity reference to a trade participant. Equality is
// by identifier only; Name is a display label.
type Party struct {
	ID   PartyID `json:"id"`
	Name string  `json:"name"`
}

// NewParty validates and constructs a Party.
func NewParty(id PartyID, name string) (Party, error) {
	if id.IsZero() {
		return Party{}, dErrors.New(dErrors.CodeValidation, "party id cannot be zero")
	}
	if name == "" {
		return Party{}, dErrors.New(dErrors.CodeValidation, "party name cannot be empty")
	}
	return Party{ID: id, Name: name}, nil
}

// Equal compares parties by identifier.
func (p Party) Equal(other Party) bool {
	return p.ID == other.ID
}

func (p Party) IsZero() bool {
	return p.ID.IsZero()
}
