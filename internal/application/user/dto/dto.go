package dto

import (
	"time"

	"github.com/orris-inc/subkeeper/internal/domain/user"
)

// UserResponse is the public view of an account; the password hash never leaves the domain.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

// UserSummaryResponse adds subscription activity to the user view.
type UserSummaryResponse struct {
	ID                   uint       `json:"id"`
	Email                string     `json:"email"`
	IsAdmin              bool       `json:"is_admin"`
	CreatedAt            time.Time  `json:"created_at"`
	SubscriptionCount    int64      `json:"subscription_count"`
	LastSubscriptionDate *time.Time `json:"last_subscription_date"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		IsAdmin:   u.IsAdmin(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserSummaryResponse(s *user.Summary) *UserSummaryResponse {
	if s == nil {
		return nil
	}
	return &UserSummaryResponse{
		ID:                   s.ID,
		Email:                s.Email,
		IsAdmin:              s.IsAdmin,
		CreatedAt:            s.CreatedAt,
		SubscriptionCount:    s.SubscriptionCount,
		LastSubscriptionDate: s.LastSubscriptionDate,
	}
}
