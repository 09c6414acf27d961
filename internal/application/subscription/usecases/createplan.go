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

type CreatePlanCommand struct {
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Features     map[string]interface{}
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	features, err := vo.NewPlanFeatures(cmd.Features)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan features", err.Error())
	}

	plan, err := subscription.NewPlan(cmd.Name, cmd.Price, cmd.DurationDays, features)
	if err != nil {
		uc.logger.Warnw("invalid plan definition", "error", err, "name", cmd.Name)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		if errors.Is(err, subscription.ErrPlanNameExists) {
			return nil, apperrors.NewConflictError(subscription.ErrPlanNameExists.Error())
		}
		uc.logger.Errorw("failed to create plan", "error", err, "name", plan.Name())
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created successfully",
		"plan_id", plan.ID(),
		"name", plan.Name(),
		"price", plan.Price().String(),
		"duration_days", plan.DurationDays(),
	)

	return dto.ToPlanDTO(plan), nil
}
