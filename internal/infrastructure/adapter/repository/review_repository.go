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

// ReviewRepository implements the ReviewRepository port using GORM
type ReviewRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReviewRepository creates a new ReviewRepository instance
func NewReviewRepository(db *gorm.DB, logger coreport.Logger) *ReviewRepository {
	return &ReviewRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ReviewRepository) entityToModel(review *entity.Review) model.Review {
	return model.Review{
		ID:                 review.ID,
		UserID:             review.UserID,
		ProjectID:          review.ProjectID,
		Rating:             review.Rating,
		Comment:            review.Comment,
		IsVerifiedPurchase: review.IsVerifiedPurchase,
		IsApproved:         review.IsApproved,
		CreatedAt:          review.CreatedAt,
		UpdatedAt:          review.UpdatedAt,
	}
}

func (r *ReviewRepository) modelToEntity(m model.Review) *entity.Review {
	return &entity.Review{
		ID:                 m.ID,
		UserID:             m.UserID,
		ProjectID:          m.ProjectID,
		Rating:             m.Rating,
		Comment:            m.Comment,
		IsVerifiedPurchase: m.IsVerifiedPurchase,
		IsApproved:         m.IsApproved,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	var m model.Review
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// GetByUserAndProject retrieves the review for (user, project)
func (r *ReviewRepository) GetByUserAndProject(ctx context.Context, userID, projectID string) (*entity.Review, error) {
	var m model.Review
	result := r.db.WithContext(ctx).First(&m, "user_id = ? AND project_id = ?", userID, projectID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// Create inserts a new review; the (user_id, project_id) unique index turns
// a racing duplicate into ErrAlreadyReviewed
func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m := r.entityToModel(review)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyReviewed
		}
		r.logger.Error("Failed to create review", map[string]any{
			"user_id":    review.UserID,
			"project_id": review.ProjectID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Update persists content and moderation changes. The verified-purchase flag
// is frozen at creation and never written back.
func (r *ReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":      review.Rating,
			"comment":     review.Comment,
			"is_approved": review.IsApproved,
			"updated_at":  review.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrReviewNotFound
	}
	return nil
}

// ListByProject returns a project's reviews, newest first; approvedOnly
// restricts to rows visible in public aggregates
func (r *ReviewRepository) ListByProject(ctx context.Context, projectID string, approvedOnly bool) ([]*entity.Review, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var models []model.Review
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	reviews := make([]*entity.Review, 0, len(models))
	for _, m := range models {
		reviews = append(reviews, r.modelToEntity(m))
	}
	return reviews, nil
}
