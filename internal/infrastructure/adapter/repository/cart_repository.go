package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
)

// CartRepository implements the CartRepository port using GORM
type CartRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCartRepository creates a new CartRepository instance
func NewCartRepository(db *gorm.DB, logger coreport.Logger) *CartRepository {
	return &CartRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CartRepository) entityToModel(item *entity.CartItem) model.CartItem {
	return model.CartItem{
		ID:          item.ID,
		UserID:      item.UserID,
		ProjectID:   item.ProjectID,
		PriceAtTime: item.PriceAtTime,
		Currency:    string(item.Currency),
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r *CartRepository) modelToEntity(m model.CartItem) *entity.CartItem {
	return &entity.CartItem{
		ID:          m.ID,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		PriceAtTime: m.PriceAtTime,
		Currency:    entity.Currency(m.Currency),
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetItem retrieves the cart entry for (user, project)
func (r *CartRepository) GetItem(ctx context.Context, userID, projectID string) (*entity.CartItem, error) {
	var m model.CartItem
	result := r.db.WithContext(ctx).First(&m, "user_id = ? AND project_id = ?", userID, projectID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// ListByUser returns all cart entries for the user, oldest first
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	var models []model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	items := make([]*entity.CartItem, 0, len(models))
	for _, m := range models {
		items = append(items, r.modelToEntity(m))
	}
	return items, nil
}

// Create inserts a new cart entry; the (user_id, project_id) unique index
// turns a racing duplicate into ErrAlreadyInCart
func (r *CartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	m := r.entityToModel(item)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyInCart
		}
		r.logger.Error("Failed to create cart item", map[string]any{
			"user_id":    item.UserID,
			"project_id": item.ProjectID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Update persists quantity changes; the price snapshot is immutable
func (r *CartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	result := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("user_id = ? AND project_id = ?", item.UserID, item.ProjectID).
		Updates(map[string]interface{}{
			"quantity":   item.Quantity,
			"updated_at": item.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrCartItemNotFound
	}
	return nil
}

// Delete removes the entry for (user, project)
func (r *CartRepository) Delete(ctx context.Context, userID, projectID string) error {
	result := r.db.WithContext(ctx).Delete(&model.CartItem{}, "user_id = ? AND project_id = ?", userID, projectID)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrCartItemNotFound
	}
	return nil
}

// Clear removes every cart entry for the user
func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Delete(&model.CartItem{}, "user_id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}
