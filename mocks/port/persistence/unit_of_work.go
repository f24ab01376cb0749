package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	var txCtx context.Context
	if args.Get(0) != nil {
		txCtx = args.Get(0).(context.Context)
	}
	return txCtx, args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetProjectRepository(ctx context.Context) persistence.ProjectRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.ProjectRepository)
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}

func (m *MockUnitOfWork) GetDownloadRepository(ctx context.Context) persistence.DownloadRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.DownloadRepository)
}
