package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create saves a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: if the email is already registered
	Create(ctx context.Context, user *entity.User) error

	// Update persists profile and verification changes
	Update(ctx context.Context, user *entity.User) error
}
