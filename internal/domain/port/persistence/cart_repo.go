package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// CartRepository defines keyed access to cart entries, unique per (user, project)
type CartRepository interface {
	// GetItem retrieves the cart entry for (user, project)
	//
	// Possible errors:
	// - ErrCartItemNotFound: if no entry exists
	GetItem(ctx context.Context, userID, projectID string) (*entity.CartItem, error)

	// ListByUser returns all cart entries for the user
	ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error)

	// Create inserts a new cart entry
	//
	// Possible errors:
	// - ErrAlreadyInCart: if an entry for (user, project) already exists
	Create(ctx context.Context, item *entity.CartItem) error

	// Update persists quantity changes
	Update(ctx context.Context, item *entity.CartItem) error

	// Delete removes the entry for (user, project)
	//
	// Possible errors:
	// - ErrCartItemNotFound: if no entry exists
	Delete(ctx context.Context, userID, projectID string) error

	// Clear removes every cart entry for the user
	Clear(ctx context.Context, userID string) error
}
