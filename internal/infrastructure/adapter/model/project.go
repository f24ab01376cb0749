package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project represents the database model for project listings. Pricing is a
// nullable column group; a NULL currency means the listing carries no pricing.
type Project struct {
	ID            string              `gorm:"primaryKey;size:36"`
	AuthorID      string              `gorm:"not null;index;size:36"`
	Title         string              `gorm:"not null;size:255"`
	Description   string              `gorm:"type:text"`
	Status        string              `gorm:"not null;index;size:20;default:draft"`
	SalePrice     decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Currency      *string             `gorm:"size:3"`
	PurchaseCount uint64              `gorm:"not null;default:0"`
	ViewCount     uint64              `gorm:"not null;default:0"`
	DownloadCount uint64              `gorm:"not null;default:0"`
	CreatedAt     time.Time           `gorm:"not null"`
	UpdatedAt     time.Time           `gorm:"not null"`

	Buyers []ProjectBuyer `gorm:"foreignKey:ProjectID;references:ID"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectBuyer is one row per member of a project's buyer set. The composite
// unique index is what makes the buyer-set insert idempotent under races.
type ProjectBuyer struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ProjectID string    `gorm:"not null;uniqueIndex:idx_project_buyer;size:36"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_project_buyer;size:36"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProjectBuyer
func (ProjectBuyer) TableName() string {
	return "project_buyers"
}
