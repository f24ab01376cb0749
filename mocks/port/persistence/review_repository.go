package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// MockReviewRepository is a mock implementation of the ReviewRepository port
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	var review *entity.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*entity.Review)
	}
	return review, args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndProject(ctx context.Context, userID, projectID string) (*entity.Review, error) {
	args := m.Called(ctx, userID, projectID)
	var review *entity.Review
	if args.Get(0) != nil {
		review = args.Get(0).(*entity.Review)
	}
	return review, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByProject(ctx context.Context, projectID string, approvedOnly bool) ([]*entity.Review, error) {
	args := m.Called(ctx, projectID, approvedOnly)
	var reviews []*entity.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]*entity.Review)
	}
	return reviews, args.Error(1)
}
