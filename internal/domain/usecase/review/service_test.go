package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
	mpers "github.com/projXchange/Backend-v1-sub000/mocks/port/persistence"
)

func quietLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	return logger
}

func projectWithBuyers(buyers ...string) *entity.Project {
	return &entity.Project{
		ID:       "proj-1",
		AuthorID: "seller-1",
		Status:   entity.ProjectStatusApproved,
		Buyers:   buyers,
	}
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Buyer gets a verified-purchase review", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(projectWithBuyers("buyer-1"), nil)
		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByUserAndProject", mock.Anything, "buyer-1", "proj-1").Return(nil, errs.ErrReviewNotFound)
		mockReviews.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.IsVerifiedPurchase && r.Rating == 5
		})).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockReviews, mockProjects, mockTime, quietLogger())

		review, err := svc.CreateReview(ctx, "buyer-1", "proj-1", 5, "Solid starter kit")

		require.NoError(t, err)
		assert.True(t, review.IsVerifiedPurchase)
		mockReviews.AssertExpectations(t)
	})

	t.Run("Non-buyer can review but is unverified", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(projectWithBuyers(), nil)
		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByUserAndProject", mock.Anything, "visitor-1", "proj-1").Return(nil, errs.ErrReviewNotFound)
		mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockReviews, mockProjects, mockTime, quietLogger())

		review, err := svc.CreateReview(ctx, "visitor-1", "proj-1", 3, "Looks fine from the demo")

		require.NoError(t, err)
		assert.False(t, review.IsVerifiedPurchase)
	})

	t.Run("Rating outside 1..5 is rejected", func(t *testing.T) {
		mockTime := new(mcore.MockTimeProvider)
		svc := NewService(new(mpers.MockReviewRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		for _, rating := range []int{0, 6, -1} {
			review, err := svc.CreateReview(ctx, "buyer-1", "proj-1", rating, "")
			assert.Nil(t, review, "rating %d", rating)
			assert.True(t, errors.Is(err, errs.ErrInvalidRating), "rating %d", rating)
		}
	})

	t.Run("Second review for the same project is a conflict", func(t *testing.T) {
		existing := &entity.Review{ID: "rev-1", UserID: "buyer-1", ProjectID: "proj-1", Rating: 4}

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(projectWithBuyers("buyer-1"), nil)
		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByUserAndProject", mock.Anything, "buyer-1", "proj-1").Return(existing, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockReviews, mockProjects, mockTime, quietLogger())

		review, err := svc.CreateReview(ctx, "buyer-1", "proj-1", 5, "")

		assert.Nil(t, review)
		assert.True(t, errors.Is(err, errs.ErrAlreadyReviewed))
		mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Edit drops approval and keeps the verified flag", func(t *testing.T) {
		existing := &entity.Review{
			ID:                 "rev-1",
			UserID:             "buyer-1",
			ProjectID:          "proj-1",
			Rating:             4,
			Comment:            "Good",
			IsVerifiedPurchase: true,
			IsApproved:         true,
		}

		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByID", mock.Anything, "rev-1").Return(existing, nil)
		mockReviews.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return !r.IsApproved && r.IsVerifiedPurchase && r.Rating == 2
		})).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		rating := 2
		review, err := svc.UpdateReview(ctx, "buyer-1", "rev-1", &rating, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, review.Rating)
		assert.False(t, review.IsApproved)
		assert.True(t, review.IsVerifiedPurchase)
	})

	t.Run("Only the author can edit", func(t *testing.T) {
		existing := &entity.Review{ID: "rev-1", UserID: "buyer-1", ProjectID: "proj-1", Rating: 4}

		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByID", mock.Anything, "rev-1").Return(existing, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		rating := 1
		review, err := svc.UpdateReview(ctx, "other-1", "rev-1", &rating, nil)

		assert.Nil(t, review)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})

	t.Run("Edited rating must stay in bounds", func(t *testing.T) {
		existing := &entity.Review{ID: "rev-1", UserID: "buyer-1", ProjectID: "proj-1", Rating: 4, IsApproved: true}

		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByID", mock.Anything, "rev-1").Return(existing, nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime).Maybe()

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		rating := 9
		review, err := svc.UpdateReview(ctx, "buyer-1", "rev-1", &rating, nil)

		assert.Nil(t, review)
		assert.True(t, errors.Is(err, errs.ErrInvalidRating))
		mockReviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestModerateReview(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Admin re-approves an edited review", func(t *testing.T) {
		existing := &entity.Review{ID: "rev-1", UserID: "buyer-1", ProjectID: "proj-1", Rating: 2, IsApproved: false}

		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("GetByID", mock.Anything, "rev-1").Return(existing, nil)
		mockReviews.On("Update", mock.Anything, mock.Anything).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		review, err := svc.ModerateReview(ctx, entity.RoleAdmin, "rev-1", true)

		require.NoError(t, err)
		assert.True(t, review.IsApproved)
	})

	t.Run("Non-admin cannot moderate", func(t *testing.T) {
		mockTime := new(mcore.MockTimeProvider)
		svc := NewService(new(mpers.MockReviewRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		review, err := svc.ModerateReview(ctx, entity.RoleUser, "rev-1", true)

		assert.Nil(t, review)
		assert.True(t, errors.Is(err, errs.ErrForbidden))
	})
}

func TestGetProjectRatingStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Averages and buckets approved reviews only", func(t *testing.T) {
		approved := []*entity.Review{
			{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 1},
		}

		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("ListByProject", mock.Anything, "proj-1", true).Return(approved, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		stats, err := svc.GetProjectRatingStats(ctx, "proj-1")

		require.NoError(t, err)
		assert.Equal(t, 4, stats.Total)
		assert.InDelta(t, 3.75, stats.Average, 0.0001)
		assert.Equal(t, int64(1), stats.Histogram[0])
		assert.Equal(t, int64(1), stats.Histogram[3])
		assert.Equal(t, int64(2), stats.Histogram[4])
	})

	t.Run("No reviews yields a zero average", func(t *testing.T) {
		mockReviews := new(mpers.MockReviewRepository)
		mockReviews.On("ListByProject", mock.Anything, "proj-1", true).Return([]*entity.Review{}, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockReviews, new(mpers.MockProjectRepository), mockTime, quietLogger())

		stats, err := svc.GetProjectRatingStats(ctx, "proj-1")

		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Zero(t, stats.Average)
	})
}
