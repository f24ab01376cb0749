package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// CreateReviewRequest is the payload for reviewing a project
type CreateReviewRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// UpdateReviewRequest is the payload for editing a review. Nil fields are
// left untouched.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ModerateReviewRequest is the admin payload for approving or rejecting a review
type ModerateReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ReviewResponse is the API view of a review
type ReviewResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	ProjectID          string    `json:"project_id"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	IsApproved         bool      `json:"is_approved"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ReviewListResponse wraps a project's visible reviews
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// NewReviewResponse maps a review entity to its API representation
func NewReviewResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
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
