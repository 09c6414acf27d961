package usecases

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
)

// loadPlans batch-loads the distinct plans referenced by ids. Deleted plans are
// simply missing from the result.
func loadPlans(ctx context.Context, planRepo subscription.PlanRepository, ids []uint) (map[uint]*subscription.Plan, error) {
	ids = lo.Uniq(lo.Filter(ids, func(id uint, _ int) bool { return id != 0 }))
	if len(ids) == 0 {
		return map[uint]*subscription.Plan{}, nil
	}

	plans, err := planRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	if plans == nil {
		plans = map[uint]*subscription.Plan{}
	}
	return plans, nil
}

func subscriptionPlanIDs(subs []*subscription.Subscription) []uint {
	return lo.Map(subs, func(sub *subscription.Subscription, _ int) uint {
		return sub.PlanID()
	})
}

func historyPlanIDs(entries []*subscription.HistoryEntry) []uint {
	return lo.FlatMap(entries, func(entry *subscription.HistoryEntry, _ int) []uint {
		return entry.PlanIDs()
	})
}
