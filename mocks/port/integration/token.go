package integration

import (
	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
)

// MockTokenManager is a mock implementation of the TokenManager port
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Issue(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Verify(token string) (*integration.TokenClaims, error) {
	args := m.Called(token)
	var claims *integration.TokenClaims
	if args.Get(0) != nil {
		claims = args.Get(0).(*integration.TokenClaims)
	}
	return claims, args.Error(1)
}
