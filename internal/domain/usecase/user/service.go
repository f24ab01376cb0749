package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

const emailTimeout = 10 * time.Second

// Service handles account registration, sign-in and verification mail
type Service struct {
	users        persistence.UserRepository
	tokens       integration.TokenManager
	email        integration.EmailSender
	limiter      integration.RateLimiter
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a user service. email and limiter may be nil when those
// integrations are not configured.
func NewService(
	users persistence.UserRepository,
	tokens integration.TokenManager,
	email integration.EmailSender,
	limiter integration.RateLimiter,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		tokens:       tokens,
		email:        email,
		limiter:      limiter,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AuthResult pairs an account with its freshly issued bearer token
type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates an account with a bcrypt password hash and issues a token.
// The welcome mail is fire-and-forget: a send failure never aborts signup.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*AuthResult, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", errs.ErrInvalidRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %s", errs.ErrInternalServer, err.Error())
	}

	account, err := entity.NewUser(email, string(hash), fullName, entity.RoleUser, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, account); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": account.ID,
		"email":   account.Email,
	})

	s.sendMail(account.Email, "Welcome to ProjXChange",
		"Your account is ready. Verify your email to start listing projects.")

	return &AuthResult{User: account, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords collapse into the same error so the response doesn't leak which
// accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %s", errs.ErrInternalServer, err.Error())
	}

	return &AuthResult{User: account, Token: token}, nil
}

// ResendVerification sends another verification mail, throttled per email
// through the injected counter store rather than process-global state
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, "resend-verification:"+account.Email)
		if err != nil {
			// Fail open: an unreachable limiter store never blocks the action
			s.logger.Warn("Rate limiter unavailable, allowing request", map[string]any{
				"email": account.Email,
				"error": err.Error(),
			})
		} else if !allowed {
			return errs.ErrRateLimited
		}
	}

	s.sendMail(account.Email, "Verify your ProjXChange email",
		"Use the link in this mail to verify your address.")
	return nil
}

// GetByID returns the account for an authenticated principal
func (s *Service) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

// sendMail delivers in the background; failures are logged as warnings and
// swallowed, per the fire-and-forget contract
func (s *Service) sendMail(to, subject, body string) {
	if s.email == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
		defer cancel()
		if err := s.email.Send(ctx, to, subject, body); err != nil {
			s.logger.Warn("Email send failed", map[string]any{
				"to":      to,
				"subject": subject,
				"error":   err.Error(),
			})
		}
	}()
}
