package integration

// TokenClaims is the authenticated identity extracted from a bearer token
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenManager issues and verifies opaque bearer tokens. The domain treats
// the token format as a black box.
type TokenManager interface {
	// Issue creates a signed token for the user
	Issue(userID, role string) (string, error)

	// Verify parses and validates a token, returning its claims
	Verify(token string) (*TokenClaims, error)
}
