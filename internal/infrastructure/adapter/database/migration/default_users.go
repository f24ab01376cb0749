package migration

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

// EnsureAdminUser seeds the administrator account from configuration. A
// blank admin email or secret disables seeding; an existing account is left
// untouched.
func EnsureAdminUser(
	ctx context.Context,
	cfg config.AuthConfig,
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	if cfg.AdminEmail == "" || cfg.AdminSecret == "" {
		logger.Info("Admin seeding disabled, no admin credentials configured", nil)
		return nil
	}

	_, err := users.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := entity.NewUser(cfg.AdminEmail, string(hash), "Administrator", entity.RoleAdmin, timeProvider)
	if err != nil {
		return err
	}
	admin.EmailVerified = true

	if err := users.Create(ctx, admin); err != nil {
		// A concurrent boot may have seeded it already
		if errors.Is(err, errs.ErrDuplicateUser) {
			return nil
		}
		return err
	}

	logger.Info("Seeded admin user", map[string]any{"email": admin.Email})
	return nil
}
