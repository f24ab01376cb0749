package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for purchase transactions
type Transaction struct {
	ID               string          `gorm:"primaryKey;size:36"`
	TransactionID    string          `gorm:"uniqueIndex;not null;size:255"`
	UserID           string          `gorm:"not null;index;size:36"`
	ProjectID        string          `gorm:"not null;index;size:36"`
	SellerID         string          `gorm:"not null;index;size:36"`
	Type             string          `gorm:"not null;size:20"`
	Status           string          `gorm:"not null;size:20"`
	Amount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SellerAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency         string          `gorm:"not null;size:3"`
	CreatedAt        time.Time       `gorm:"not null"`
	ProcessedAt      *time.Time
	RefundedAt       *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
