package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
}

// CancelSubscriptionUseCase is the direct cancel path. Unlike a status update to
// cancelled it appends no history entry.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	var previous string

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByID(txCtx, cmd.SubscriptionID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil || !sub.IsOwnedBy(cmd.UserID) {
			return apperrors.NewNotFoundError(subscription.ErrSubscriptionNotFound.Error())
		}

		previous = sub.Status().String()
		loadedVersion := sub.Version()
		sub.Cancel()

		if err := uc.subscriptionRepo.Update(txCtx, sub, loadedVersion); err != nil {
			if errors.Is(err, subscription.ErrVersionConflict) {
				return apperrors.NewConflictError(subscription.ErrVersionConflict.Error())
			}
			uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("subscription cancelled successfully",
		"subscription_id", cmd.SubscriptionID,
		"user_id", cmd.UserID,
		"previous_status", previous,
	)

	return nil
}
