package usecases

import (
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/domain/user"
)

const tokenTypeBearer = "Bearer"

func issueAuthResponse(issuer TokenIssuer, u *user.User) (*dto.AuthResponse, error) {
	token, err := issuer.Issue(u.ID(), u.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	return &dto.AuthResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(token.ExpiresIn.Seconds()),
	}, nil
}
