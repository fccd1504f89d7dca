package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

func validTerms(t *testing.T) Terms {
	t.Helper()
	amount, err := domain.NewMoney(100000, "USD")
	require.NoError(t, err)
	return Terms{
		CreditKind:          CreditSight,
		Amount:              amount,
		ApplicationDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:          time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		LatestShipment:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PresentationDays:    10,
		LoadPort:            domain.Port{UNLocode: "CNSHA", Name: "Shanghai"},
		DischargePort:       domain.Port{UNLocode: "NLRTM", Name: "Rotterdam"},
		PlaceOfPresentation: domain.Location{Country: "NL", City: "Amsterdam"},
		GoodsDescription:    "200 cartons cotton shirts per PO-42",
	}
}

func validParties(t *testing.T) Parties {
	t.Helper()
	mk := func(name string) domain.Party {
		p, err := domain.NewParty(domain.NewPartyID(), name)
		require.NoError(t, err)
		return p
	}
	return Parties{
		Applicant:    mk("Meridian Imports BV"),
		Beneficiary:  mk("Shanghai Textile Co"),
		IssuingBank:  mk("Bank of Rotterdam"),
		AdvisingBank: mk("East China Commercial Bank"),
	}
}

func TestTerms_Validate(t *testing.T) {
	require.NoError(t, validTerms(t).Validate())

	cases := map[string]func(*Terms){
		"zero amount":               func(tm *Terms) { tm.Amount.Amount = 0 },
		"expiry before application": func(tm *Terms) { tm.ExpiryDate = tm.ApplicationDate },
		"latest ship after expiry":  func(tm *Terms) { tm.LatestShipment = tm.ExpiryDate.AddDate(0, 0, 1) },
		"no presentation period":    func(tm *Terms) { tm.PresentationDays = 0 },
		"missing load port":         func(tm *Terms) { tm.LoadPort = domain.Port{} },
		"missing goods description": func(tm *Terms) { tm.GoodsDescription = "" },
		"unknown credit kind":       func(tm *Terms) { tm.CreditKind = "revolving" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			terms := validTerms(t)
			mutate(&terms)
			err := terms.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParties_DistinctnessAndRoles(t *testing.T) {
	parties := validParties(t)
	require.NoError(t, parties.Validate())

	t.Run("duplicate identity rejected", func(t *testing.T) {
		dup := parties
		dup.AdvisingBank = dup.IssuingBank
		err := dup.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("missing party rejected", func(t *testing.T) {
		missing := parties
		missing.Beneficiary = domain.Party{}
		assert.Error(t, missing.Validate())
	})

	t.Run("role resolution", func(t *testing.T) {
		role, ok := parties.RoleOf(parties.IssuingBank.ID)
		require.True(t, ok)
		assert.Equal(t, domain.RoleIssuingBank, role)

		_, ok = parties.RoleOf(domain.NewPartyID())
		assert.False(t, ok, "strangers hold no role")

		p, ok := parties.ByRole(domain.RoleBeneficiary)
		require.True(t, ok)
		assert.Equal(t, parties.Beneficiary.ID, p.ID)
	})
}

func TestNewCase(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	c, err := NewCase(domain.NewCaseID(), validTerms(t), validParties(t), now)
	require.NoError(t, err)

	assert.Equal(t, StatusApplied, c.Status)
	assert.Equal(t, uint64(1), c.Version)
	assert.False(t, c.Documents.Complete())
	require.NoError(t, c.CheckInvariants())

	_, err = NewCase(domain.CaseID{}, validTerms(t), validParties(t), now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCheckInvariants_FlagsCorruptedSnapshots(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	c, err := NewCase(domain.NewCaseID(), validTerms(t), validParties(t), now)
	require.NoError(t, err)

	t.Run("duplicated parties", func(t *testing.T) {
		bad := c.Clone()
		bad.Parties.Applicant = bad.Parties.Beneficiary
		err := bad.CheckInvariants()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("unknown status", func(t *testing.T) {
		bad := c.Clone()
		bad.Status = "negotiating"
		assert.True(t, dErrors.HasCode(bad.CheckInvariants(), dErrors.CodeInvariantViolation))
	})

	t.Run("shipped without shipment date", func(t *testing.T) {
		bad := c.Clone()
		bad.Status = StatusShipped
		assert.True(t, dErrors.HasCode(bad.CheckInvariants(), dErrors.CodeInvariantViolation))
	})
}

func TestClone_IsolatesSnapshots(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	c, err := NewCase(domain.NewCaseID(), validTerms(t), validParties(t), now)
	require.NoError(t, err)

	ship := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	c.ShipmentDate = &ship

	dup := c.Clone()
	dup.Status = StatusShipped
	dup.Version++
	*dup.ShipmentDate = dup.ShipmentDate.AddDate(0, 0, 5)

	assert.Equal(t, StatusApplied, c.Status)
	assert.Equal(t, uint64(1), c.Version)
	assert.Equal(t, ship, *c.ShipmentDate)
}
