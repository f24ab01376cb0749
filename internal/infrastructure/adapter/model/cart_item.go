package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem represents the database model for cart entries. The composite
// unique index enforces at most one entry per (user, project).
type CartItem struct {
	ID          string          `gorm:"primaryKey;size:36"`
	UserID      string          `gorm:"not null;uniqueIndex:idx_cart_user_project;size:36"`
	ProjectID   string          `gorm:"not null;uniqueIndex:idx_cart_user_project;size:36"`
	PriceAtTime decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency    string          `gorm:"not null;size:3"`
	Quantity    int             `gorm:"not null;default:1"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}
