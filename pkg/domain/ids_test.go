package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lcflow/pkg/domain-errors"
)

func TestParseCaseID_Invariants(t *testing.T) {
	t.Run("round-trips a generated id", func(t *testing.T) {
		id := NewCaseID()
		parsed, err := ParseCaseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("rejects empty, garbage, and the nil uuid", func(t *testing.T) {
		for _, s := range []string{"", "not-a-uuid", uuid.Nil.String()} {
			_, err := ParseCaseID(s)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		}
	})
}

// TestTypeDistinction verifies party and document ids stay distinct types.
// Cross-type assignment is a compile error; this documents the intent.
func TestTypeDistinction(t *testing.T) {
	// var c CaseID = NewPartyID()     // type mismatch
	// var p PartyID = NewDocumentID() // type mismatch
	p := NewPartyID()
	d := NewDocumentID()
	assert.NotEqual(t, p.String(), d.String())
	assert.False(t, p.IsZero())
	assert.True(t, PartyID{}.IsZero())
}

func TestParseEvent_RoundTrip(t *testing.T) {
	for _, e := range []Event{
		EventIssue, EventShip, EventPresentDocuments, EventPayBeneficiary,
		EventPayAdvising, EventPayIssuer, EventTerminate, EventAttachDocuments,
	} {
		parsed, err := ParseEvent(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}

	_, err := ParseEvent("refinance")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	_, err = ParseEvent("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseRole_Trimming(t *testing.T) {
	r, err := ParseRole(" Issuing_Bank ")
	require.NoError(t, err)
	assert.Equal(t, RoleIssuingBank, r)

	_, err = ParseRole("notary")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	assert.Len(t, CaseRoles(), 4)
}
