package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// WishlistItem is unique per (user, project) and carries no price snapshot
type WishlistItem struct {
	ID        string
	UserID    string
	ProjectID string
	CreatedAt time.Time
}

// NewWishlistItem creates a wishlist entry
func NewWishlistItem(userID, projectID string, timeProvider tport.TimeProvider) (*WishlistItem, error) {
	if userID == "" || projectID == "" {
		return nil, errs.ErrInvalidRequest
	}
	return &WishlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProjectID: projectID,
		CreatedAt: timeProvider.Now(),
	}, nil
}
