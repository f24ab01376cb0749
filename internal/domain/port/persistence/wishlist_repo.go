package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// WishlistRepository defines keyed access to wishlist entries, unique per (user, project)
type WishlistRepository interface {
	// Exists checks whether a wishlist entry exists for (user, project)
	Exists(ctx context.Context, userID, projectID string) (bool, error)

	// ListByUser returns all wishlist entries for the user
	ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error)

	// Create inserts a new wishlist entry
	//
	// Possible errors:
	// - ErrAlreadyInWishlist: if an entry for (user, project) already exists
	Create(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes the entry for (user, project)
	//
	// Possible errors:
	// - ErrWishlistItemNotFound: if no entry exists
	Delete(ctx context.Context, userID, projectID string) error
}
