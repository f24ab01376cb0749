package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// Review rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is unique per (user, project). IsVerifiedPurchase is frozen at
// creation from the buyer set and never recomputed, even if the purchase is
// later refunded. Any content edit drops IsApproved until re-moderation.
type Review struct {
	ID                 string
	UserID             string
	ProjectID          string
	Rating             int
	Comment            string
	IsVerifiedPurchase bool
	IsApproved         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewReview creates an approved review with the verified-purchase flag
// computed by the caller from the project's buyer set
func NewReview(userID, projectID string, rating int, comment string, verifiedPurchase bool, timeProvider tport.TimeProvider) (*Review, error) {
	if userID == "" || projectID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if rating < MinRating || rating > MaxRating {
		return nil, errs.ErrInvalidRating
	}

	now := timeProvider.Now()
	return &Review{
		ID:                 uuid.NewString(),
		UserID:             userID,
		ProjectID:          projectID,
		Rating:             rating,
		Comment:            strings.TrimSpace(comment),
		IsVerifiedPurchase: verifiedPurchase,
		IsApproved:         true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// ApplyEdit updates content fields and forces re-moderation. Nil fields are
// left untouched.
func (r *Review) ApplyEdit(rating *int, comment *string, timeProvider tport.TimeProvider) error {
	if rating == nil && comment == nil {
		return nil
	}
	if rating != nil {
		if *rating < MinRating || *rating > MaxRating {
			return errs.ErrInvalidRating
		}
		r.Rating = *rating
	}
	if comment != nil {
		r.Comment = strings.TrimSpace(*comment)
	}
	r.IsApproved = false
	r.UpdatedAt = timeProvider.Now()
	return nil
}
