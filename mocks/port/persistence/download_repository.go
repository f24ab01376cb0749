package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// MockDownloadRepository is a mock implementation of the DownloadRepository port
type MockDownloadRepository struct {
	mock.Mock
}

func (m *MockDownloadRepository) Create(ctx context.Context, download *entity.Download) error {
	args := m.Called(ctx, download)
	return args.Error(0)
}

func (m *MockDownloadRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Download, error) {
	args := m.Called(ctx, userID)
	var downloads []*entity.Download
	if args.Get(0) != nil {
		downloads = args.Get(0).([]*entity.Download)
	}
	return downloads, args.Error(1)
}
