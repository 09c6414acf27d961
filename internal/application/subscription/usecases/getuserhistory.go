package usecases

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type GetUserHistoryUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	historyRepo      subscription.HistoryRepository
	planRepo         subscription.PlanRepository
	logger           logger.Interface
}

func NewGetUserHistoryUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	historyRepo subscription.HistoryRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *GetUserHistoryUseCase {
	return &GetUserHistoryUseCase{
		subscriptionRepo: subscriptionRepo,
		historyRepo:      historyRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// Execute groups the user's ledger by subscription. The key set is exactly the
// user's subscription ids; a subscription without entries maps to an empty slice.
// Each slice is ordered newest first.
func (uc *GetUserHistoryUseCase) Execute(ctx context.Context, userID uint) (map[uint][]*dto.HistoryEntryDTO, error) {
	subs, err := uc.subscriptionRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user subscriptions", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return map[uint][]*dto.HistoryEntryDTO{}, nil
	}

	entries, err := uc.historyRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user history", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list user history: %w", err)
	}

	plans, err := loadPlans(ctx, uc.planRepo, append(historyPlanIDs(entries), subscriptionPlanIDs(subs)...))
	if err != nil {
		uc.logger.Errorw("failed to load plans for history", "error", err, "user_id", userID)
		return nil, err
	}

	bySubscription := lo.GroupBy(entries, func(entry *subscription.HistoryEntry) uint {
		return entry.SubscriptionID()
	})

	result := make(map[uint][]*dto.HistoryEntryDTO, len(subs))
	for _, sub := range subs {
		parent := dto.ToSubscriptionDTO(sub, plans[sub.PlanID()])
		result[sub.ID()] = dto.ToHistoryEntryDTOList(bySubscription[sub.ID()], plans, parent)
	}

	return result, nil
}
