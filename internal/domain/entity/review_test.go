package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

func TestNewReview(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := fixedClock(now)

	t.Run("Starts approved with the caller's verified flag", func(t *testing.T) {
		review, err := NewReview("buyer-1", "proj-1", 4, "  Clean code  ", true, clock)

		require.NoError(t, err)
		assert.True(t, review.IsApproved)
		assert.True(t, review.IsVerifiedPurchase)
		assert.Equal(t, "Clean code", review.Comment)
	})

	t.Run("Rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			review, err := NewReview("buyer-1", "proj-1", rating, "", false, clock)
			assert.Nil(t, review)
			assert.True(t, errors.Is(err, errs.ErrInvalidRating))
		}
	})
}

func TestReviewApplyEdit(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := fixedClock(now)

	newApproved := func() *Review {
		review, err := NewReview("buyer-1", "proj-1", 5, "Great", true, clock)
		require.NoError(t, err)
		return review
	}

	t.Run("Any edit drops approval", func(t *testing.T) {
		review := newApproved()
		rating := 2
		require.NoError(t, review.ApplyEdit(&rating, nil, clock))

		assert.Equal(t, 2, review.Rating)
		assert.False(t, review.IsApproved)
		assert.True(t, review.IsVerifiedPurchase, "verified flag is frozen")
	})

	t.Run("Comment-only edit also drops approval", func(t *testing.T) {
		review := newApproved()
		comment := "Changed my mind"
		require.NoError(t, review.ApplyEdit(nil, &comment, clock))

		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "Changed my mind", review.Comment)
		assert.False(t, review.IsApproved)
	})

	t.Run("Empty edit is a no-op", func(t *testing.T) {
		review := newApproved()
		require.NoError(t, review.ApplyEdit(nil, nil, clock))
		assert.True(t, review.IsApproved)
	})

	t.Run("Out-of-bounds edit leaves the review untouched", func(t *testing.T) {
		review := newApproved()
		rating := 7
		err := review.ApplyEdit(&rating, nil, clock)

		assert.True(t, errors.Is(err, errs.ErrInvalidRating))
		assert.Equal(t, 5, review.Rating)
		assert.True(t, review.IsApproved)
	})
}
