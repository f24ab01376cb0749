package integration

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
)

// MockAnalyticsPublisher is a mock implementation of the AnalyticsPublisher port
type MockAnalyticsPublisher struct {
	mock.Mock
}

func (m *MockAnalyticsPublisher) Publish(ctx context.Context, event integration.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAnalyticsPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
