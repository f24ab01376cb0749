package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// MockWishlistRepository is a mock implementation of the WishlistRepository port
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Exists(ctx context.Context, userID, projectID string) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	args := m.Called(ctx, userID)
	var items []*entity.WishlistItem
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.WishlistItem)
	}
	return items, args.Error(1)
}

func (m *MockWishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}
