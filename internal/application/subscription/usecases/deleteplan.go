package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// DeletePlanUseCase hard-deletes a plan. Subscriptions and history rows that
// still reference it are left as they are.
type DeletePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint) error {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return apperrors.NewNotFoundError("plan not found")
	}

	if err := uc.planRepo.Delete(ctx, planID); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted successfully", "plan_id", planID, "name", plan.Name())
	return nil
}
