package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) entityToModel(user *entity.User) model.User {
	return model.User{
		ID:            user.ID,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		FullName:      user.FullName,
		Role:          string(user.Role),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func (r *UserRepository) modelToEntity(m model.User) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		FullName:      m.FullName,
		Role:          entity.Role(m.Role),
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// GetByEmail retrieves a user by email, matched case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// Create saves a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := r.entityToModel(user)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate user email", map[string]any{"email": user.Email})
			return errs.ErrDuplicateUser
		}
		r.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Update persists profile and verification changes
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	m := r.entityToModel(user)
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"full_name":      m.FullName,
			"password_hash":  m.PasswordHash,
			"email_verified": m.EmailVerified,
			"updated_at":     m.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
