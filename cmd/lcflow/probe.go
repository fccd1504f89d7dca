package main

import (
	"context"
	"fmt"
	"time"

	"lcflow/internal/letter/engine"
	"lcflow/internal/letter/models"
	"lcflow/internal/letter/registry"
	"lcflow/internal/platform/config"
	"lcflow/pkg/domain"
)

// runProbe opens a throwaway case and terminates it under the configured
// policy. It fails when the wiring cannot commit, for example when the
// terminate role list leaves no party able to cancel.
func runProbe(ctx context.Context, reg *registry.Registry, cfg config.Core) error {
	parties, err := probeParties()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	amount, err := domain.NewMoney(1, "USD")
	if err != nil {
		return err
	}
	c, err := models.NewCase(domain.NewCaseID(), models.Terms{
		CreditKind:          models.CreditSight,
		Amount:              amount,
		ApplicationDate:     now,
		ExpiryDate:          now.AddDate(0, 1, 0),
		LatestShipment:      now.AddDate(0, 0, 14),
		PresentationDays:    7,
		LoadPort:            domain.Port{UNLocode: "CNSHA", Name: "Shanghai"},
		DischargePort:       domain.Port{UNLocode: "NLRTM", Name: "Rotterdam"},
		PlaceOfPresentation: domain.Location{Country: "NL", City: "Amsterdam"},
		GoodsDescription:    "wiring probe",
	}, parties, now)
	if err != nil {
		return err
	}
	if err := reg.Open(ctx, c); err != nil {
		return fmt.Errorf("probe open: %w", err)
	}

	actor, ok := parties.ByRole(cfg.TerminateRoles[0])
	if !ok {
		return fmt.Errorf("no party holds configured role %s", cfg.TerminateRoles[0])
	}
	if _, err := reg.Submit(ctx, c.ID, engine.Command{
		Event:    domain.EventTerminate,
		Actor:    actor.ID,
		At:       now,
		Evidence: engine.Evidence{Reason: "startup wiring probe"},
	}); err != nil {
		return fmt.Errorf("probe terminate: %w", err)
	}
	return nil
}

func probeParties() (models.Parties, error) {
	var parties models.Parties
	for _, slot := range []struct {
		name string
		dst  *domain.Party
	}{
		{"probe applicant", &parties.Applicant},
		{"probe beneficiary", &parties.Beneficiary},
		{"probe issuing bank", &parties.IssuingBank},
		{"probe advising bank", &parties.AdvisingBank},
	} {
		p, err := domain.NewParty(domain.NewPartyID(), slot.name)
		if err != nil {
			return models.Parties{}, err
		}
		*slot.dst = p
	}
	return parties, nil
}
