package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// Cart quantity bounds
const (
	MinCartQuantity = 1
	MaxCartQuantity = 10
)

// CartItem is unique per (user, project). PriceAtTime is a snapshot of the
// project's sale price at add-time; later price changes on the project never
// alter it.
type CartItem struct {
	ID          string
	UserID      string
	ProjectID   string
	PriceAtTime decimal.Decimal
	Currency    Currency
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCartItem creates a cart entry with the price snapshot taken by the caller
func NewCartItem(userID, projectID string, priceAtTime decimal.Decimal, currency Currency, quantity int, timeProvider tport.TimeProvider) (*CartItem, error) {
	if userID == "" || projectID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if quantity < MinCartQuantity || quantity > MaxCartQuantity {
		return nil, errs.ErrInvalidQuantity
	}
	if !IsValidCurrency(string(currency)) {
		return nil, errs.ErrInvalidCurrency
	}

	now := timeProvider.Now()
	return &CartItem{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectID:   projectID,
		PriceAtTime: priceAtTime,
		Currency:    currency,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetQuantity updates the quantity within bounds
func (c *CartItem) SetQuantity(quantity int, timeProvider tport.TimeProvider) error {
	if quantity < MinCartQuantity || quantity > MaxCartQuantity {
		return errs.ErrInvalidQuantity
	}
	c.Quantity = quantity
	c.UpdatedAt = timeProvider.Now()
	return nil
}

// Subtotal returns price_at_time multiplied by quantity
func (c *CartItem) Subtotal() decimal.Decimal {
	return c.PriceAtTime.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
