package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	var tx *entity.Transaction
	if rf, ok := args.Get(0).(func(context.Context, string) *entity.Transaction); ok {
		tx = rf(ctx, id)
	} else if args.Get(0) != nil {
		tx = args.Get(0).(*entity.Transaction)
	}
	var err error
	if rf, ok := args.Get(1).(func(context.Context, string) error); ok {
		err = rf(ctx, id)
	} else {
		err = args.Error(1)
	}
	return tx, err
}

func (m *MockTransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var tx *entity.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*entity.Transaction)
	}
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	var txs []*entity.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]*entity.Transaction)
	}
	return txs, args.Error(1)
}
