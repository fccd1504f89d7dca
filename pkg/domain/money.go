package domain

import (
	"fmt"

	dErrors "lcflow/pkg/domain-errors"
)

// Money is an amount in integer minor units of one currency. Floating point
// never appears anywhere on the money path.
//
// Invariants:
//   - Amount >= 0
//   - Currency is a three-letter uppercase ISO 4217 code, fixed at creation
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney validates and constructs a Money value.
//
// Errors: returns CodeValidation for a negative amount or malformed currency.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, dErrors.Newf(dErrors.CodeValidation, "amount cannot be negative: %d", amount)
	}
	if !validCurrency(currency) {
		return Money{}, dErrors.Newf(dErrors.CodeValidation, "currency must be a three-letter uppercase code, got %q", currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// IsZero reports whether the value is the uninitialized Money.
func (m Money) IsZero() bool {
	return m.Amount == 0 && m.Currency == ""
}

// Equal compares amount and currency. Two zero values are equal.
func (m Money) Equal(other Money) bool {
	return m.Amount == other.Amount && m.Currency == other.Currency
}

// Add sums two amounts of the same currency.
//
// Errors: returns CodeValidation on a currency mismatch.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, dErrors.Newf(dErrors.CodeValidation, "currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Mul scales an amount by a non-negative quantity.
func (m Money) Mul(qty int64) (Money, error) {
	if qty < 0 {
		return Money{}, dErrors.Newf(dErrors.CodeValidation, "quantity cannot be negative: %d", qty)
	}
	return Money{Amount: m.Amount * qty, Currency: m.Currency}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
