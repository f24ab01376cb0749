package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// ReviewRepository defines essential methods to interact with review data
type ReviewRepository interface {
	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entity.Review, error)

	// GetByUserAndProject retrieves the review for (user, project)
	//
	// Possible errors:
	// - ErrReviewNotFound: if no review exists
	GetByUserAndProject(ctx context.Context, userID, projectID string) (*entity.Review, error)

	// Create inserts a new review
	//
	// Possible errors:
	// - ErrAlreadyReviewed: if a review for (user, project) already exists
	Create(ctx context.Context, review *entity.Review) error

	// Update persists content and moderation changes
	Update(ctx context.Context, review *entity.Review) error

	// ListByProject returns a project's reviews; approvedOnly restricts to
	// rows visible in public aggregates
	ListByProject(ctx context.Context, projectID string, approvedOnly bool) ([]*entity.Review, error)
}
