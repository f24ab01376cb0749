package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// Role represents the authorization role of a user
type Role string

// User roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a marketplace account, either a buyer, a seller or an admin
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FullName      string
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new user account with basic validation
func NewUser(email, passwordHash, fullName string, role Role, timeProvider tport.TimeProvider) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin reports whether the user carries the elevated role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
