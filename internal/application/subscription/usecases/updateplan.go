package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// UpdatePlanCommand lists the only plan fields a caller may change.
type UpdatePlanCommand struct {
	PlanID       uint
	Name         *string
	Price        *decimal.Decimal
	DurationDays *int
	Features     *map[string]interface{}
}

type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	update := subscription.PlanUpdate{
		Name:         cmd.Name,
		Price:        cmd.Price,
		DurationDays: cmd.DurationDays,
	}
	if cmd.Features != nil {
		features, err := vo.NewPlanFeatures(*cmd.Features)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid plan features", err.Error())
		}
		update.Features = &features
	}

	if update.IsEmpty() {
		return dto.ToPlanDTO(plan), nil
	}

	if err := plan.Apply(update); err != nil {
		uc.logger.Warnw("invalid plan update", "error", err, "plan_id", cmd.PlanID)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, subscription.ErrPlanNameExists) {
			return nil, apperrors.NewConflictError(subscription.ErrPlanNameExists.Error())
		}
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated successfully", "plan_id", plan.ID(), "name", plan.Name())

	return dto.ToPlanDTO(plan), nil
}
