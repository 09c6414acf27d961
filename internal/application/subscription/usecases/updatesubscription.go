package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// UpdateSubscriptionCommand patches status and/or plan. Nil fields are left unchanged.
type UpdateSubscriptionCommand struct {
	SubscriptionID  uint
	UserID          uint
	Status          *string
	PlanID          *uint
	ExpectedVersion *int
}

func (c UpdateSubscriptionCommand) isEmpty() bool {
	return c.Status == nil && c.PlanID == nil
}

type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	recorder         *HistoryRecorder
	txManager        TransactionManager
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	recorder *HistoryRecorder,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		recorder:         recorder,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute applies the patch and appends exactly one history entry. When both
// fields are given the entry is classified by the plan change.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	var newStatus vo.SubscriptionStatus
	if cmd.Status != nil {
		status, err := vo.ParseSubscriptionStatus(*cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		newStatus = status
	}

	var (
		sub         *subscription.Subscription
		currentPlan *subscription.Plan
		changeType  vo.ChangeType
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		sub, err = uc.subscriptionRepo.GetByID(txCtx, cmd.SubscriptionID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil || !sub.IsOwnedBy(cmd.UserID) {
			return apperrors.NewNotFoundError(subscription.ErrSubscriptionNotFound.Error())
		}

		if cmd.ExpectedVersion != nil && *cmd.ExpectedVersion != sub.Version() {
			uc.logger.Warnw("stale subscription version",
				"subscription_id", sub.ID(),
				"expected_version", *cmd.ExpectedVersion,
				"current_version", sub.Version(),
			)
			return apperrors.NewConflictError(subscription.ErrVersionConflict.Error())
		}

		if cmd.isEmpty() {
			currentPlan, err = uc.planRepo.GetByID(txCtx, sub.PlanID())
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}
			return nil
		}

		var newPlan, oldPlan *subscription.Plan
		if cmd.PlanID != nil {
			newPlan, err = uc.planRepo.GetByID(txCtx, *cmd.PlanID)
			if err != nil {
				uc.logger.Errorw("failed to get plan", "error", err, "plan_id", *cmd.PlanID)
				return fmt.Errorf("failed to get plan: %w", err)
			}
			if newPlan == nil {
				uc.logger.Warnw("update references unknown plan", "plan_id", *cmd.PlanID, "subscription_id", sub.ID())
				return apperrors.NewInvalidPlanError("invalid plan")
			}
			// nil when the old plan has been deleted; priced as zero
			oldPlan, err = uc.planRepo.GetByID(txCtx, sub.PlanID())
			if err != nil {
				return fmt.Errorf("failed to get current plan: %w", err)
			}
		}

		loadedVersion := sub.Version()
		change := subscription.HistoryChange{}

		if cmd.Status != nil {
			oldStatus, err := sub.ChangeStatus(newStatus)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			change.OldStatus = &oldStatus
			change.NewStatus = &newStatus
			changeType = vo.ChangeTypeForStatus(newStatus)
		}

		if newPlan != nil {
			oldPlanID, err := sub.ChangePlan(newPlan)
			if err != nil {
				return apperrors.NewInvalidPlanError("invalid plan")
			}
			newPlanID := newPlan.ID()
			change.OldPlanID = &oldPlanID
			change.NewPlanID = &newPlanID
			changeType = subscription.ClassifyPlanChange(oldPlan, newPlan)
			currentPlan = newPlan
		} else {
			currentPlan, err = uc.planRepo.GetByID(txCtx, sub.PlanID())
			if err != nil {
				return fmt.Errorf("failed to get plan: %w", err)
			}
		}

		if err := uc.subscriptionRepo.Update(txCtx, sub, loadedVersion); err != nil {
			return uc.mapWriteError(err, sub)
		}

		_, err = uc.recorder.Record(txCtx, sub, changeType, change)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !cmd.isEmpty() {
		uc.logger.Infow("subscription updated successfully",
			"subscription_id", sub.ID(),
			"user_id", sub.UserID(),
			"change_type", changeType,
			"status", sub.Status(),
			"plan_id", sub.PlanID(),
		)
	}

	return dto.ToSubscriptionDTO(sub, currentPlan), nil
}

func (uc *UpdateSubscriptionUseCase) mapWriteError(err error, sub *subscription.Subscription) error {
	switch {
	case errors.Is(err, subscription.ErrVersionConflict):
		uc.logger.Warnw("subscription modified concurrently", "subscription_id", sub.ID())
		return apperrors.NewConflictError(subscription.ErrVersionConflict.Error())
	case errors.Is(err, subscription.ErrActiveSubscriptionExists):
		uc.logger.Warnw("reactivation blocked by another active subscription", "subscription_id", sub.ID(), "user_id", sub.UserID())
		return apperrors.NewConflictError(subscription.ErrActiveSubscriptionExists.Error())
	default:
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to update subscription: %w", err)
	}
}
