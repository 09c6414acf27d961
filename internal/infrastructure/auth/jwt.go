package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/shared/authorization"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
)

const issuer = "subkeeper"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint                   `json:"user_id"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 access tokens. There are no refresh
// tokens; clients log in again after expiry.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: time.Duration(accessExpMinutes) * time.Minute,
		now:       biztime.NowUTC,
	}
}

// Issue implements usecases.TokenIssuer.
func (s *JWTService) Issue(userID uint, role authorization.UserRole) (*usecases.IssuedToken, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &usecases.IssuedToken{
		AccessToken: signed,
		ExpiresIn:   s.accessTTL,
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AccessTTL returns the lifetime of issued tokens.
func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}
