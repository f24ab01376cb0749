package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original string
		sale     string
		expected int64
	}{
		{"quarter off", "1000", "750", 25},
		{"no discount", "100", "100", 0},
		{"rounds half away from zero", "1000", "875", 13}, // 12.5 -> 13
		{"rounds down below half", "1000", "876", 12},     // 12.4 -> 12
		{"full discount", "100", "0", 100},
		{"zero original yields zero", "0", "50", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(dec(t, tt.original), dec(t, tt.sale))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEngine_Split(t *testing.T) {
	engine := NewEngine(decimal.NewFromFloat(0.10))

	tests := []struct {
		amount     string
		commission string
		seller     string
	}{
		{"100.00", "10.00", "90.00"},
		{"99.99", "10.00", "89.99"},
		{"33.33", "3.33", "30.00"},
		{"1000000.01", "100000.00", "900000.01"},
		{"80.00", "8.00", "72.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount := dec(t, tt.amount)
			commission, seller := engine.Split(amount)

			assert.Equal(t, tt.commission, entity.FormatAmount(commission))
			assert.Equal(t, tt.seller, entity.FormatAmount(seller))

			// The split must reassemble exactly, with no rounding drift
			assert.True(t, commission.Add(seller).Equal(amount),
				"commission %s + seller %s != amount %s", commission, seller, amount)
		})
	}
}

func TestEngine_ComputePricing(t *testing.T) {
	engine := NewEngine(DefaultCommissionRate)

	t.Run("with pricing", func(t *testing.T) {
		info := engine.ComputePricing(&entity.Pricing{
			SalePrice:     dec(t, "750"),
			OriginalPrice: dec(t, "1000"),
			Currency:      entity.CurrencyINR,
		})

		assert.Equal(t, "750.00", info.SalePrice)
		assert.Equal(t, "1000.00", info.OriginalPrice)
		assert.Equal(t, entity.CurrencyINR, info.Currency)
		assert.Equal(t, int64(25), info.DiscountPercent)
	})

	t.Run("absent pricing renders zero discount", func(t *testing.T) {
		info := engine.ComputePricing(nil)

		assert.Equal(t, "0.00", info.SalePrice)
		assert.Equal(t, int64(0), info.DiscountPercent)
	})
}
