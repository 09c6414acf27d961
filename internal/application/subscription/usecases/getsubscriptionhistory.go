package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type GetSubscriptionHistoryQuery struct {
	SubscriptionID uint
	UserID         uint
}

type GetSubscriptionHistoryUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	historyRepo      subscription.HistoryRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewGetSubscriptionHistoryUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	historyRepo subscription.HistoryRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *GetSubscriptionHistoryUseCase {
	return &GetSubscriptionHistoryUseCase{
		subscriptionRepo: subscriptionRepo,
		historyRepo:      historyRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// Execute returns the ledger of one owned subscription, newest first. An owned
// subscription without entries yields an empty slice.
func (uc *GetSubscriptionHistoryUseCase) Execute(ctx context.Context, query GetSubscriptionHistoryQuery) ([]*dto.HistoryEntryDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, query.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", query.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil || !sub.IsOwnedBy(query.UserID) {
		return nil, apperrors.NewNotFoundError(subscription.ErrSubscriptionNotFound.Error())
	}

	entries, err := uc.historyRepo.ListBySubscriptionID(ctx, sub.ID())
	if err != nil {
		uc.logger.Errorw("failed to list subscription history", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to list subscription history: %w", err)
	}

	plans, err := loadPlans(ctx, uc.planRepo, append(historyPlanIDs(entries), sub.PlanID()))
	if err != nil {
		uc.logger.Errorw("failed to load plans for history", "error", err, "subscription_id", sub.ID())
		return nil, err
	}

	parent := dto.ToSubscriptionDTO(sub, plans[sub.PlanID()])
	return dto.ToHistoryEntryDTOList(entries, plans, parent), nil
}
