package review

import (
	"context"
	"errors"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

// Service enforces the review gate: one review per (user, project), rating
// bounds, a verified-purchase flag frozen at creation and re-moderation on
// every content edit.
type Service struct {
	reviews      persistence.ReviewRepository
	projects     persistence.ProjectRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a review service
func NewService(
	reviews persistence.ReviewRepository,
	projects persistence.ProjectRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		reviews:      reviews,
		projects:     projects,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateReview inserts a review. The verified-purchase flag captures buyer-set
// membership at this moment and is never recomputed, even if the purchase is
// later refunded.
func (s *Service) CreateReview(ctx context.Context, userID, projectID string, rating int, comment string) (*entity.Review, error) {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return nil, errs.ErrInvalidRating
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reviews.GetByUserAndProject(ctx, userID, projectID); err == nil {
		return nil, errs.NewDuplicateEntryError(errs.ErrAlreadyReviewed, userID, projectID)
	} else if !errors.Is(err, errs.ErrReviewNotFound) {
		return nil, err
	}

	review, err := entity.NewReview(userID, projectID, rating, comment, project.HasBuyer(userID), s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("Review created", map[string]any{
		"user_id":           userID,
		"project_id":        projectID,
		"rating":            rating,
		"verified_purchase": review.IsVerifiedPurchase,
	})
	return review, nil
}

// UpdateReview lets the original author edit content fields. Any edit forces
// is_approved to false until re-moderation.
func (s *Service) UpdateReview(ctx context.Context, userID, reviewID string, rating *int, comment *string) (*entity.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, errs.ErrForbidden
	}

	if err := review.ApplyEdit(rating, comment, s.timeProvider); err != nil {
		return nil, err
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("Review edited, pending re-moderation", map[string]any{
		"review_id":  review.ID,
		"user_id":    userID,
		"project_id": review.ProjectID,
	})
	return review, nil
}

// ModerateReview sets the approval flag; admin only
func (s *Service) ModerateReview(ctx context.Context, actorRole entity.Role, reviewID string, approved bool) (*entity.Review, error) {
	if actorRole != entity.RoleAdmin {
		return nil, errs.ErrForbidden
	}

	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.IsApproved = approved
	review.UpdatedAt = s.timeProvider.Now()
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("Review moderated", map[string]any{
		"review_id": review.ID,
		"approved":  approved,
	})
	return review, nil
}

// ListProjectReviews returns a project's approved reviews
func (s *Service) ListProjectReviews(ctx context.Context, projectID string) ([]*entity.Review, error) {
	return s.reviews.ListByProject(ctx, projectID, true)
}
