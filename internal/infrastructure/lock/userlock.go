package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

const keyPrefix = "subkeeper:lock:user:"

// RedisUserLocker serializes subscription writes per user across instances.
// It implements usecases.UserLocker.
type RedisUserLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
	logger logger.Interface
}

func NewRedisUserLocker(client redis.UniversalClient, expiry time.Duration, tries int, log logger.Interface) *RedisUserLocker {
	if tries < 1 {
		tries = 1
	}
	return &RedisUserLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  tries,
		logger: log,
	}
}

// WithUserLock runs fn while holding the user's lock. A lock that cannot be
// acquired within the configured tries yields subscription.ErrUserBusy.
func (l *RedisUserLocker) WithUserLock(ctx context.Context, userID uint, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex(
		fmt.Sprintf("%s%d", keyPrefix, userID),
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(l.tries),
		redsync.WithRetryDelay(50*time.Millisecond),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if isContention(err) {
			l.logger.Warnw("user lock busy", "user_id", userID)
			return subscription.ErrUserBusy
		}
		l.logger.Errorw("failed to acquire user lock", "user_id", userID, "error", err)
		return fmt.Errorf("failed to acquire user lock: %w", err)
	}

	defer func() {
		// a lost lock only matters for the next writer; the unique index still holds
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			l.logger.Warnw("failed to release user lock", "user_id", userID, "error", err)
		}
	}()

	return fn(ctx)
}

func isContention(err error) bool {
	if errors.Is(err, redsync.ErrFailed) {
		return true
	}
	var taken *redsync.ErrTaken
	return errors.As(err, &taken)
}
