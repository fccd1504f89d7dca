package domain

import dErrors "lcflow/pkg/domain-errors"

// Port is a UN/LOCODE-keyed port descriptor.
type Port struct {
	UNLocode string `json:"unLocode"`
	Name     string `json:"name"`
}

func (p Port) IsZero() bool {
	return p.UNLocode == "" && p.Name == ""
}

// Location is a free-form place descriptor used for place of presentation.
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

func (l Location) IsZero() bool {
	return l.Country == "" && l.City == ""
}

// WeightUnit uses the UN/CEFACT codes carriers put on transport documents.
type WeightUnit string

const (
	WeightKilograms WeightUnit = "KGM"
	WeightPounds    WeightUnit = "LBR"
)

// Weight is a gross weight measurement. Value is in whole units of Unit.
type Weight struct {
	Value int64      `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// Validate checks the measurement is usable on a document.
func (w Weight) Validate() error {
	if w.Value <= 0 {
		return dErrors.Newf(dErrors.CodeValidation, "weight must be positive, got %d", w.Value)
	}
	if w.Unit != WeightKilograms && w.Unit != WeightPounds {
		return dErrors.Newf(dErrors.CodeValidation, "unsupported weight unit %q", w.Unit)
	}
	return nil
}

// PricedGood is one line of goods under a purchase order. Immutable once
// attached to a document.
type PricedGood struct {
	Description      string `json:"description"`
	PurchaseOrderRef string `json:"purchaseOrderRef"`
	Quantity         int64  `json:"quantity"`
	UnitPrice        Money  `json:"unitPrice"`
	GrossWeight      Weight `json:"grossWeight"`
}

// Validate checks the line is well formed.
//
/// Errors: CodeValidation on empty description, non-positive quantity, or a
// bad weight.
func (g PricedGood) Validate() error {
	if g.Description == "" {
		return dErrors.New(dErrors.CodeValidation, "good description cannot be empty")
	}
	if g.Quantity <= 0 {
		return dErrors.Newf(dErrors.CodeValidation, "good quantity must be positive, got %d", g.Quantity)
	}
	if g.UnitPrice.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "good unit price is required")
	}
	return g.GrossWeight.Validate()
}

// LineTotal is quantity times unit price.
func (g PricedGood) LineTotal() (Money, error) {
	return g.UnitPrice.Mul(g.Quantity)
}
