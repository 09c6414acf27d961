package usecases

import (
	"context"
)

// TransactionManager runs fn inside one database transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserLocker serializes subscription operations of a single user across processes.
// It returns subscription.ErrUserBusy when the lock cannot be acquired.
type UserLocker interface {
	WithUserLock(ctx context.Context, userID uint, fn func(ctx context.Context) error) error
}

// LifecycleMetrics receives lifecycle counters.
type LifecycleMetrics interface {
	SubscriptionCreated()
	HistoryEntryRecorded(changeType string)
}
