package usecases

import (
	"time"

	"github.com/orris-inc/subkeeper/internal/shared/authorization"
)

// IssuedToken is a signed access token and its lifetime.
type IssuedToken struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole) (*IssuedToken, error)
}
