package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
	mint "github.com/projXchange/Backend-v1-sub000/mocks/port/integration"
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

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Creates the account and issues a token", func(t *testing.T) {
		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "dev@example.com" && u.Role == entity.RoleUser && u.PasswordHash != "hunter2-long"
		})).Return(nil)
		mockTokens := new(mint.MockTokenManager)
		mockTokens.On("Issue", mock.AnythingOfType("string"), "user").Return("signed-token", nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockUsers, mockTokens, nil, nil, mockTime, quietLogger())

		result, err := svc.Register(ctx, "Dev@Example.com", "hunter2-long", "Dev Example")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "dev@example.com", result.User.Email)
		err = bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("hunter2-long"))
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Sends the welcome mail in the background", func(t *testing.T) {
		sent := make(chan struct{})

		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockTokens := new(mint.MockTokenManager)
		mockTokens.On("Issue", mock.Anything, mock.Anything).Return("signed-token", nil)
		mockEmail := new(mint.MockEmailSender)
		mockEmail.On("Send", mock.Anything, "dev@example.com", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(sent) }).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockUsers, mockTokens, mockEmail, nil, mockTime, quietLogger())

		_, err := svc.Register(ctx, "dev@example.com", "hunter2-long", "Dev Example")
		require.NoError(t, err)

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("welcome mail was never sent")
		}
	})

	t.Run("Short passwords are rejected", func(t *testing.T) {
		mockTime := new(mcore.MockTimeProvider)
		svc := NewService(new(mpers.MockUserRepository), new(mint.MockTokenManager), nil, nil, mockTime, quietLogger())

		result, err := svc.Register(ctx, "dev@example.com", "short", "Dev Example")

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("Duplicate email surfaces the repository conflict", func(t *testing.T) {
		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockUsers, new(mint.MockTokenManager), nil, nil, mockTime, quietLogger())

		result, err := svc.Register(ctx, "dev@example.com", "hunter2-long", "Dev Example")

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrDuplicateUser))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2-long"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &entity.User{
		ID:           "user-1",
		Email:        "dev@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}

	t.Run("Valid credentials yield a token", func(t *testing.T) {
		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "dev@example.com").Return(account, nil)
		mockTokens := new(mint.MockTokenManager)
		mockTokens.On("Issue", "user-1", "user").Return("signed-token", nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockUsers, mockTokens, nil, nil, mockTime, quietLogger())

		result, err := svc.Login(ctx, "dev@example.com", "hunter2-long")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, account, result.User)
	})

	t.Run("Wrong password and unknown email are indistinguishable", func(t *testing.T) {
		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "dev@example.com").Return(account, nil)
		mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockUsers, new(mint.MockTokenManager), nil, nil, mockTime, quietLogger())

		_, wrongPass := svc.Login(ctx, "dev@example.com", "not-the-password")
		_, unknown := svc.Login(ctx, "ghost@example.com", "whatever-pass")

		assert.True(t, errors.Is(wrongPass, errs.ErrInvalidCredentials))
		assert.True(t, errors.Is(unknown, errs.ErrInvalidCredentials))
	})
}

func TestResendVerification(t *testing.T) {
	ctx := context.Background()

	account := &entity.User{ID: "user-1", Email: "dev@example.com", Role: entity.RoleUser}

	t.Run("Throttled when the limiter says no", func(t *testing.T) {
		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "dev@example.com").Return(account, nil)
		mockLimiter := new(mint.MockRateLimiter)
		mockLimiter.On("Allow", mock.Anything, "resend-verification:dev@example.com").Return(false, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockUsers, new(mint.MockTokenManager), nil, mockLimiter, mockTime, quietLogger())

		err := svc.ResendVerification(ctx, "dev@example.com")

		assert.True(t, errors.Is(err, errs.ErrRateLimited))
	})

	t.Run("Limiter outage fails open", func(t *testing.T) {
		sent := make(chan struct{})

		mockUsers := new(mpers.MockUserRepository)
		mockUsers.On("GetByEmail", mock.Anything, "dev@example.com").Return(account, nil)
		mockLimiter := new(mint.MockRateLimiter)
		mockLimiter.On("Allow", mock.Anything, mock.Anything).Return(false, errors.New("redis: connection refused"))
		mockEmail := new(mint.MockEmailSender)
		mockEmail.On("Send", mock.Anything, "dev@example.com", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { close(sent) }).Return(nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockUsers, new(mint.MockTokenManager), mockEmail, mockLimiter, mockTime, quietLogger())

		err := svc.ResendVerification(ctx, "dev@example.com")

		require.NoError(t, err)
		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("verification mail was never sent")
		}
	})
}
