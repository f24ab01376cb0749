package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// ProjectStatus represents the lifecycle state of a project listing
type ProjectStatus string

// Project lifecycle states. Only StatusApproved permits purchase, cart,
// wishlist and download actions.
const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusApproved  ProjectStatus = "approved"
	ProjectStatusSuspended ProjectStatus = "suspended"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValidProjectStatus validates if the status is one of the allowed values
func IsValidProjectStatus(status string) bool {
	switch ProjectStatus(status) {
	case ProjectStatusDraft, ProjectStatusPending, ProjectStatusApproved,
		ProjectStatusSuspended, ProjectStatusArchived:
		return true
	}
	return false
}

// Pricing holds the purchase price attributes of a project.
// Absence of pricing means the project is not purchasable.
type Pricing struct {
	SalePrice     decimal.Decimal
	OriginalPrice decimal.Decimal
	Currency      Currency
}

// Project represents a software project listed on the marketplace
type Project struct {
	ID            string
	AuthorID      string
	Title         string
	Description   string
	Status        ProjectStatus
	Pricing       *Pricing
	Buyers        []string
	PurchaseCount uint64
	ViewCount     uint64
	DownloadCount uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProject creates a new project listing in draft state
func NewProject(authorID, title, description string, pricing *Pricing, timeProvider tport.TimeProvider) (*Project, error) {
	if authorID == "" {
		return nil, errs.ErrInvalidRequest
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.ErrInvalidRequest
	}
	if pricing != nil {
		if !IsValidCurrency(string(pricing.Currency)) {
			return nil, errs.ErrInvalidCurrency
		}
		if pricing.SalePrice.IsNegative() || pricing.OriginalPrice.IsNegative() {
			return nil, errs.ErrInvalidAmount
		}
	}

	now := timeProvider.Now()
	return &Project{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Status:      ProjectStatusDraft,
		Pricing:     pricing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsPurchasable reports whether the project status permits purchase, cart,
// wishlist and download actions
func (p *Project) IsPurchasable() bool {
	return p.Status == ProjectStatusApproved
}

// HasBuyer reports whether the user is in the project's buyer set
func (p *Project) HasBuyer(userID string) bool {
	for _, id := range p.Buyers {
		if id == userID {
			return true
		}
	}
	return false
}

// AddBuyer idempotently appends the user to the buyer set and keeps
// purchase_count equal to the buyer set size. Returns true only on first
// insertion.
func (p *Project) AddBuyer(userID string) bool {
	if p.HasBuyer(userID) {
		return false
	}
	p.Buyers = append(p.Buyers, userID)
	p.PurchaseCount++
	return true
}

// IsAuthor reports whether the user authored this project
func (p *Project) IsAuthor(userID string) bool {
	return p.AuthorID == userID
}
