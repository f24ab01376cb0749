package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// DefaultCommissionRate is the platform's cut of each transaction
var DefaultCommissionRate = decimal.NewFromFloat(0.10)

// Info is the display-ready pricing summary of a project
type Info struct {
	SalePrice       string          `json:"sale_price"`
	OriginalPrice   string          `json:"original_price"`
	Currency        entity.Currency `json:"currency"`
	DiscountPercent int64           `json:"discount_percent"`
}

// Engine computes sale pricing and the commission split. All arithmetic is
// decimal; money never touches binary floats.
type Engine struct {
	commissionRate decimal.Decimal
}

// NewEngine creates a pricing engine with the given platform commission rate
func NewEngine(commissionRate decimal.Decimal) *Engine {
	return &Engine{commissionRate: commissionRate}
}

// CommissionRate returns the configured platform rate
func (e *Engine) CommissionRate() decimal.Decimal {
	return e.commissionRate
}

// ComputePricing derives the display summary from a project's pricing
// attributes. Absent pricing renders zero values and zero discount; purchase
// paths reject missing pricing before they get here.
func (e *Engine) ComputePricing(p *entity.Pricing) Info {
	if p == nil {
		return Info{
			SalePrice:       entity.FormatAmount(decimal.Zero),
			OriginalPrice:   entity.FormatAmount(decimal.Zero),
			DiscountPercent: 0,
		}
	}
	return Info{
		SalePrice:       entity.FormatAmount(p.SalePrice),
		OriginalPrice:   entity.FormatAmount(p.OriginalPrice),
		Currency:        p.Currency,
		DiscountPercent: DiscountPercent(p.OriginalPrice, p.SalePrice),
	}
}

// DiscountPercent computes round(((original - sale) / original) * 100) with
// round-half-away-from-zero semantics. Zero when original is not positive.
func DiscountPercent(original, sale decimal.Decimal) int64 {
	if !original.IsPositive() {
		return 0
	}
	percent := original.Sub(sale).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return percent.IntPart()
}

// Split divides a gross amount into the platform commission and the seller
// payout. The commission is rounded to two decimal places and the seller
// amount is the exact remainder, so commission + seller always equals amount.
func (e *Engine) Split(amount decimal.Decimal) (commission, seller decimal.Decimal) {
	commission = amount.Mul(e.commissionRate).Round(entity.MaxDecimalPlaces)
	seller = amount.Sub(commission)
	return commission, seller
}
