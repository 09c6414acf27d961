package subscription

import (
	"context"

	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
)

// Lookups return (nil, nil) when the row does not exist.

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
}

type SubscriptionRepository interface {
	// Create returns ErrActiveSubscriptionExists when the user already owns an active row.
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	GetActiveByUserID(ctx context.Context, userID uint) (*Subscription, error)
	ListByStatus(ctx context.Context, status vo.SubscriptionStatus) ([]*Subscription, error)
	// Update writes the aggregate only if the stored version equals expectedVersion,
	// returning ErrVersionConflict otherwise.
	Update(ctx context.Context, subscription *Subscription, expectedVersion int) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// HistoryRepository is append-only.
type HistoryRepository interface {
	Create(ctx context.Context, entry *HistoryEntry) error
	// ListBySubscriptionID orders newest first.
	ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*HistoryEntry, error)
	// ListByUserID orders newest first across all of the user's subscriptions.
	ListByUserID(ctx context.Context, userID uint) ([]*HistoryEntry, error)
}
