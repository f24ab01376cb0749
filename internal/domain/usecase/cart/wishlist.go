package cart

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

// AddToWishlist mirrors the cart's duplicate check but carries no price
// snapshot
func (s *Service) AddToWishlist(ctx context.Context, userID, projectID string) (*entity.WishlistItem, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsPurchasable() {
		return nil, errs.ErrProjectNotPurchasable
	}

	exists, err := s.wishlists.Exists(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewDuplicateEntryError(errs.ErrAlreadyInWishlist, userID, projectID)
	}

	item, err := entity.NewWishlistItem(userID, projectID, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.wishlists.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Added to wishlist", map[string]any{
		"user_id":    userID,
		"project_id": projectID,
	})
	return item, nil
}

// RemoveFromWishlist deletes the entry for (user, project)
func (s *Service) RemoveFromWishlist(ctx context.Context, userID, projectID string) error {
	return s.wishlists.Delete(ctx, userID, projectID)
}

// GetWishlist returns the user's wishlist entries
func (s *Service) GetWishlist(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	return s.wishlists.ListByUser(ctx, userID)
}
