package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

func TestCancelSubscriptionUseCase_Execute_Success(t *testing.T) {
	sub := testSubscription(t, 7, 42, 1, vo.StatusActive, 4)
	var written *subscription.Subscription
	var expected int
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return sub, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription, expectedVersion int) error {
			written = s
			expected = expectedVersion
			return nil
		},
	}
	txManager := &mockTxManager{}

	uc := NewCancelSubscriptionUseCase(subRepo, txManager, logger.NewNopLogger())
	err := uc.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 7, UserID: 42})

	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, vo.StatusCancelled, written.Status())
	assert.Equal(t, 4, expected)
	assert.Equal(t, 1, txManager.calls)
}

func TestCancelSubscriptionUseCase_Execute_AlreadyCancelled(t *testing.T) {
	sub := testSubscription(t, 7, 42, 1, vo.StatusCancelled, 2)
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return sub, nil
		},
	}

	uc := NewCancelSubscriptionUseCase(subRepo, &mockTxManager{}, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 7, UserID: 42}))
	assert.Equal(t, vo.StatusCancelled, sub.Status())
}

func TestCancelSubscriptionUseCase_Execute_NotOwnedLooksLikeMissing(t *testing.T) {
	sub := testSubscription(t, 7, 42, 1, vo.StatusActive, 1)
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			if id == 7 {
				return sub, nil
			}
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription, expectedVersion int) error {
			t.Fatal("update must not be called")
			return nil
		},
	}
	uc := NewCancelSubscriptionUseCase(subRepo, &mockTxManager{}, logger.NewNopLogger())

	notOwned := uc.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 7, UserID: 99})
	missing := uc.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 8, UserID: 42})

	require.Error(t, notOwned)
	require.Error(t, missing)
	assert.True(t, apperrors.IsNotFoundError(notOwned))
	assert.Equal(t, missing.Error(), notOwned.Error())
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestCancelSubscriptionUseCase_Execute_VersionConflict(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) {
			return testSubscription(t, 7, 42, 1, vo.StatusActive, 1), nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription, expectedVersion int) error {
			return subscription.ErrVersionConflict
		},
	}
	uc := NewCancelSubscriptionUseCase(subRepo, &mockTxManager{}, logger.NewNopLogger())

	err := uc.Execute(context.Background(), CancelSubscriptionCommand{SubscriptionID: 7, UserID: 42})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}
