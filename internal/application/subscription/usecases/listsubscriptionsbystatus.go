package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type ListSubscriptionsByStatusUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewListSubscriptionsByStatusUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *ListSubscriptionsByStatusUseCase {
	return &ListSubscriptionsByStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsByStatusUseCase) Execute(ctx context.Context, status string) ([]*dto.SubscriptionDTO, error) {
	parsed, err := vo.ParseSubscriptionStatus(status)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	subs, err := uc.subscriptionRepo.ListByStatus(ctx, parsed)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions by status", "error", err, "status", parsed)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	plans, err := loadPlans(ctx, uc.planRepo, subscriptionPlanIDs(subs))
	if err != nil {
		uc.logger.Errorw("failed to load plans for subscriptions", "error", err, "status", parsed)
		return nil, err
	}

	return dto.ToSubscriptionDTOList(subs, plans), nil
}
