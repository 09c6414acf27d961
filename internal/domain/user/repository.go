package user

import (
	"context"
	"time"
)

// Repository defines the interface for user data operations.
// Lookups return (nil, nil) when no user matches.
type Repository interface {
	// Create returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update returns ErrEmailAlreadyExists when the new email is taken.
	Update(ctx context.Context, user *User) error
	GetSummaryByEmail(ctx context.Context, email string) (*Summary, error)
}

// Summary is a read model joining a user with their subscription activity.
type Summary struct {
	ID                   uint
	Email                string
	IsAdmin              bool
	CreatedAt            time.Time
	SubscriptionCount    int64
	LastSubscriptionDate *time.Time
}
