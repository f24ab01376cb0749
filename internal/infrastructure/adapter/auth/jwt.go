package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

// JWTManager implements the TokenManager port with HS256-signed JWTs
type JWTManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWTManager instance
func NewJWTManager(cfg config.AuthConfig, timeProvider coreport.TimeProvider) *JWTManager {
	return &JWTManager{
		secret:       []byte(cfg.JWTSecret),
		issuer:       cfg.Issuer,
		ttl:          cfg.TokenTTL,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token for the user
func (m *JWTManager) Issue(userID, role string) (string, error) {
	now := m.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims
func (m *JWTManager) Verify(tokenString string) (*integration.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, errs.ErrUnauthorized
	}

	return &integration.TokenClaims{
		UserID: c.Subject,
		Role:   c.Role,
	}, nil
}
