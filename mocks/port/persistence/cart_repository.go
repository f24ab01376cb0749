package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// MockCartRepository is a mock implementation of the CartRepository port
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetItem(ctx context.Context, userID, projectID string) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, projectID)
	var item *entity.CartItem
	if args.Get(0) != nil {
		item = args.Get(0).(*entity.CartItem)
	}
	return item, args.Error(1)
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)
	var items []*entity.CartItem
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.CartItem)
	}
	return items, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
