package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
)

// WishlistRepository implements the WishlistRepository port using GORM
type WishlistRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWishlistRepository creates a new WishlistRepository instance
func NewWishlistRepository(db *gorm.DB, logger coreport.Logger) *WishlistRepository {
	return &WishlistRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WishlistRepository) modelToEntity(m model.WishlistItem) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:        m.ID,
		UserID:    m.UserID,
		ProjectID: m.ProjectID,
		CreatedAt: m.CreatedAt,
	}
}

// Exists checks whether a wishlist entry exists for (user, project)
func (r *WishlistRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WishlistItem{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count > 0, nil
}

// ListByUser returns all wishlist entries for the user, newest first
func (r *WishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	var models []model.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	items := make([]*entity.WishlistItem, 0, len(models))
	for _, m := range models {
		items = append(items, r.modelToEntity(m))
	}
	return items, nil
}

// Create inserts a new wishlist entry; the (user_id, project_id) unique
// index turns a racing duplicate into ErrAlreadyInWishlist
func (r *WishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	m := model.WishlistItem{
		ID:        item.ID,
		UserID:    item.UserID,
		ProjectID: item.ProjectID,
		CreatedAt: item.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyInWishlist
		}
		r.logger.Error("Failed to create wishlist item", map[string]any{
			"user_id":    item.UserID,
			"project_id": item.ProjectID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Delete removes the entry for (user, project)
func (r *WishlistRepository) Delete(ctx context.Context, userID, projectID string) error {
	result := r.db.WithContext(ctx).Delete(&model.WishlistItem{}, "user_id = ? AND project_id = ?", userID, projectID)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrWishlistItemNotFound
	}
	return nil
}
