package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lcflow/pkg/domain-errors"
)

func TestNewMoney_Invariants(t *testing.T) {
	t.Run("accepts zero and positive minor units", func(t *testing.T) {
		m, err := NewMoney(0, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount)

		m, err = NewMoney(100000, "USD")
		require.NoError(t, err)
		assert.Equal(t, "100000 USD", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewMoney(-1, "USD")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects malformed currency codes", func(t *testing.T) {
		for _, code := range []string{"", "US", "usd", "USDX", "U5D"} {
			_, err := NewMoney(1, code)
			assert.Truef(t, dErrors.HasCode(err, dErrors.CodeValidation), "code %q should be rejected", code)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	usd := func(n int64) Money {
		m, err := NewMoney(n, "USD")
		require.NoError(t, err)
		return m
	}

	t.Run("adds same currency", func(t *testing.T) {
		sum, err := usd(30).Add(usd(12))
		require.NoError(t, err)
		assert.Equal(t, usd(42), sum)
	})

	t.Run("rejects cross-currency addition", func(t *testing.T) {
		eur, err := NewMoney(10, "EUR")
		require.NoError(t, err)
		_, err = usd(10).Add(eur)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("scales by quantity", func(t *testing.T) {
		total, err := usd(250).Mul(4)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), total.Amount)

		_, err = usd(250).Mul(-1)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestPricedGood_Validate(t *testing.T) {
	price, err := NewMoney(500, "USD")
	require.NoError(t, err)
	good := PricedGood{
		Description:      "cotton shirts",
		PurchaseOrderRef: "PO-9",
		Quantity:         200,
		UnitPrice:        price,
		GrossWeight:      Weight{Value: 400, Unit: WeightKilograms},
	}
	require.NoError(t, good.Validate())

	total, err := good.LineTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(100000), total.Amount)

	bad := good
	bad.Quantity = 0
	assert.True(t, dErrors.HasCode(bad.Validate(), dErrors.CodeValidation))

	bad = good
	bad.GrossWeight.Unit = "TON"
	assert.True(t, dErrors.HasCode(bad.Validate(), dErrors.CodeValidation))
}
