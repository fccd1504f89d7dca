package models

import (
	"time"

	"lcflow/internal/document"
	"lcflow/pkg/domain"
	dErrors "lcflow/pkg/domain-errors"
)

// CreditKind distinguishes payment-at-sight credits from deferred ones.
type CreditKind string

const (
	CreditSight    CreditKind = "sight"
	CreditDeferred CreditKind = "deferred"
)

// Terms are the financial and shipping conditions fixed at application time.
//
// Invariants:
//   - Amount > 0
//   - ExpiryDate > ApplicationDate
//   - LatestShipment <= ExpiryDate
//   - PresentationDays > 0
type Terms struct {
	CreditKind          CreditKind      `json:"creditKind"`
	Amount              domain.Money    `json:"amount"`
	ApplicationDate     time.Time       `json:"applicationDate"`
	ExpiryDate          time.Time       `json:"expiryDate"`
	LatestShipment      time.Time       `json:"latestShipment"`
	PresentationDays    int             `json:"presentationDays"`
	LoadPort            domain.Port     `json:"loadPort"`
	DischargePort       domain.Port     `json:"dischargePort"`
	PlaceOfPresentation domain.Location `json:"placeOfPresentation"`
	GoodsDescription    string          `json:"goodsDescription"`
}

// Validate checks the term invariants.
//
// Errors: CodeValidation; the request is rejected, the case untouched.
func (t Terms) Validate() error {
	if t.CreditKind != CreditSight && t.CreditKind != CreditDeferred {
		return dErrors.Newf(dErrors.CodeValidation, "unsupported credit kind %q", t.CreditKind)
	}
	if t.Amount.Amount <= 0 {
		return dErrors.Newf(dErrors.CodeValidation, "credit amount must be positive, got %s", t.Amount)
	}
	if t.ApplicationDate.IsZero() || t.ExpiryDate.IsZero() || t.LatestShipment.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "application, expiry, and latest-shipment dates are required")
	}
	if !t.ExpiryDate.After(t.ApplicationDate) {
		return dErrors.New(dErrors.CodeValidation, "expiry date must be after application date")
	}
	if t.LatestShipment.After(t.ExpiryDate) {
		return dErrors.New(dErrors.CodeValidation, "latest shipment date cannot be after expiry date")
	}
	if t.PresentationDays <= 0 {
		return dErrors.Newf(dErrors.CodeValidation, "presentation period must be positive, got %d days", t.PresentationDays)
	}
	if t.LoadPort.IsZero() || t.DischargePort.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "load and discharge ports are required")
	}
	if t.GoodsDescription == "" {
		return dErrors.New(dErrors.CodeValidation, "goods description is required")
	}
	return nil
}

// Parties are the four identities fixed at application time.
type Parties struct {
	Applicant    domain.Party `json:"applicant"`
	Beneficiary  domain.Party `json:"beneficiary"`
	IssuingBank  domain.Party `json:"issuingBank"`
	AdvisingBank domain.Party `json:"advisingBank"`
}

func (p Parties) ordered() []domain.Party {
	return []domain.Party{p.Applicant, p.Beneficiary, p.IssuingBank, p.AdvisingBank}
}

// Validate checks all four parties are present and pairwise distinct.
func (p Parties) Validate() error {
	seen := make(map[domain.PartyID]bool, 4)
	for _, party := range p.ordered() {
		if party.IsZero() {
			return dErrors.New(dErrors.CodeValidation, "all four case parties are required")
		}
		if seen[party.ID] {
			return dErrors.Newf(dErrors.CodeValidation, "case parties must be distinct, %s appears twice", party.ID)
		}
		seen[party.ID] = true
	}
	return nil
}

// RoleOf resolves the role a party holds on the case.
func (p Parties) RoleOf(id domain.PartyID) (domain.Role, bool) {
	switch id {
	case p.Applicant.ID:
		return domain.RoleApplicant, true
	case p.Beneficiary.ID:
		return domain.RoleBeneficiary, true
	case p.IssuingBank.ID:
		return domain.RoleIssuingBank, true
	case p.AdvisingBank.ID:
		return domain.RoleAdvisingBank, true
	}
	return "", false
}

// ByRole resolves the party holding a role.
func (p Parties) ByRole(role domain.Role) (domain.Party, bool) {
	switch role {
	case domain.RoleApplicant:
		return p.Applicant, true
	case domain.RoleBeneficiary:
		return p.Beneficiary, true
	case domain.RoleIssuingBank:
		return p.IssuingBank, true
	case domain.RoleAdvisingBank:
		return p.AdvisingBank, true
	}
	return domain.Party{}, false
}

// Case is the aggregate root of one letter-of-credit transaction. Instances
// are immutable snapshots: every committed transition produces a new value
// with Version bumped by one, so reads of a committed snapshot never race
// with writes.
type Case struct {
	ID        domain.CaseID `json:"id"`
	Terms     Terms         `json:"terms"`
	Parties   Parties       `json:"parties"`
	Documents document.Set  `json:"documents"`
	Status    Status        `json:"status"`

	// ShipmentDate is set by the ship transition and anchors the
	// presentation window.
	ShipmentDate *time.Time `json:"shipmentDate,omitempty"`

	// TerminationReason records why a terminated case was cancelled.
	TerminationReason string `json:"terminationReason,omitempty"`

	Version   uint64    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCase validates the application and opens the aggregate in StatusApplied.
func NewCase(id domain.CaseID, terms Terms, parties Parties, now time.Time) (*Case, error) {
	if id.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "case id cannot be zero")
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if err := parties.Validate(); err != nil {
		return nil, err
	}
	return &Case{
		ID:        id,
		Terms:     terms,
		Parties:   parties,
		Documents: document.NewSet(),
		Status:    StatusApplied,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckInvariants verifies a stored snapshot is structurally sound. A failure
// here is a programming error, not a request problem: the case must be
// quarantined and an operator alerted.
func (c *Case) CheckInvariants() error {
	if c == nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "case snapshot is nil")
	}
	if c.ID.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "case snapshot has no id")
	}
	if !c.Status.IsValid() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "case %s has unknown status %q", c.ID, c.Status)
	}
	if err := c.Parties.Validate(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "case parties corrupted")
	}
	if err := c.Terms.Validate(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "case terms corrupted")
	}
	switch c.Status {
	case StatusShipped, StatusDocumentsPresented, StatusBeneficiaryPaid, StatusAdvisingPaid, StatusIssuerPaid:
		if c.ShipmentDate == nil {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "case %s in %s has no shipment date", c.ID, c.Status)
		}
	}
	return nil
}

// Clone returns a deep-enough copy for copy-on-transition: value fields are
// copied, the document set is immutable, and pointer fields are re-pointed.
func (c *Case) Clone() *Case {
	dup := *c
	if c.ShipmentDate != nil {
		d := *c.ShipmentDate
		dup.ShipmentDate = &d
	}
	return &dup
}
