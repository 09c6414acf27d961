package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// Execute returns every subscription of the user, newest first.
func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user subscriptions", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	plans, err := loadPlans(ctx, uc.planRepo, subscriptionPlanIDs(subs))
	if err != nil {
		uc.logger.Errorw("failed to load plans for subscriptions", "error", err, "user_id", userID)
		return nil, err
	}

	return dto.ToSubscriptionDTOList(subs, plans), nil
}
