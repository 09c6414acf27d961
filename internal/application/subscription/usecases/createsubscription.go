package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/biztime"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	UserID uint
	PlanID uint
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	recorder         *HistoryRecorder
	txManager        TransactionManager
	locker           UserLocker
	metrics          LifecycleMetrics
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	recorder *HistoryRecorder,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		recorder:         recorder,
		txManager:        txManager,
		logger:           logger,
	}
}

// SetUserLocker sets the per-user distributed lock (optional).
func (uc *CreateSubscriptionUseCase) SetUserLocker(locker UserLocker) {
	uc.locker = locker
}

// SetMetrics sets the lifecycle metrics sink (optional).
func (uc *CreateSubscriptionUseCase) SetMetrics(metrics LifecycleMetrics) {
	uc.metrics = metrics
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if cmd.PlanID == 0 {
		return nil, apperrors.NewValidationError("plan_id is required")
	}

	var (
		sub  *subscription.Subscription
		plan *subscription.Plan
	)
	create := func(ctx context.Context) error {
		var err error
		sub, plan, err = uc.create(ctx, cmd)
		return err
	}

	var err error
	if uc.locker != nil {
		err = uc.locker.WithUserLock(ctx, cmd.UserID, create)
	} else {
		err = create(ctx)
	}
	if err != nil {
		if errors.Is(err, subscription.ErrUserBusy) {
			uc.logger.Warnw("concurrent subscription operation rejected", "user_id", cmd.UserID)
			return nil, apperrors.NewConflictError(subscription.ErrUserBusy.Error())
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SubscriptionCreated()
	}

	uc.logger.Infow("subscription created successfully",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"plan_id", sub.PlanID(),
		"end_date", sub.EndDate(),
	)

	return dto.ToSubscriptionDTO(sub, plan), nil
}

func (uc *CreateSubscriptionUseCase) create(ctx context.Context, cmd CreateSubscriptionCommand) (*subscription.Subscription, *subscription.Plan, error) {
	var (
		sub  *subscription.Subscription
		plan *subscription.Plan
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		plan, err = uc.planRepo.GetByID(txCtx, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if plan == nil {
			uc.logger.Warnw("plan not found", "plan_id", cmd.PlanID)
			return apperrors.NewNotFoundError("plan not found")
		}

		active, err := uc.subscriptionRepo.GetActiveByUserID(txCtx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to check active subscription", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to check active subscription: %w", err)
		}
		if active != nil {
			uc.logger.Warnw("user already has an active subscription",
				"user_id", cmd.UserID,
				"subscription_id", active.ID(),
			)
			return apperrors.NewConflictError(subscription.ErrActiveSubscriptionExists.Error())
		}

		sub, err = subscription.NewSubscription(cmd.UserID, plan, biztime.NowUTC())
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.subscriptionRepo.Create(txCtx, sub); err != nil {
			if errors.Is(err, subscription.ErrActiveSubscriptionExists) {
				uc.logger.Warnw("active subscription created concurrently", "user_id", cmd.UserID)
				return apperrors.NewConflictError(subscription.ErrActiveSubscriptionExists.Error())
			}
			uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		planID := plan.ID()
		status := vo.StatusActive
		_, err = uc.recorder.Record(txCtx, sub, vo.ChangeTypeCreate, subscription.HistoryChange{
			NewPlanID: &planID,
			NewStatus: &status,
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return sub, plan, nil
}
