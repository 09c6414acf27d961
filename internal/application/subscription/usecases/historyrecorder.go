package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// HistoryRecorder appends ledger entries. It is only called by lifecycle use cases
// from inside their transaction, so the entry commits together with the change it records.
type HistoryRecorder struct {
	historyRepo subscription.HistoryRepository
	metrics     LifecycleMetrics
	logger      logger.Interface
}

func NewHistoryRecorder(historyRepo subscription.HistoryRepository, logger logger.Interface) *HistoryRecorder {
	return &HistoryRecorder{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// SetMetrics sets the lifecycle metrics sink (optional).
func (r *HistoryRecorder) SetMetrics(metrics LifecycleMetrics) {
	r.metrics = metrics
}

func (r *HistoryRecorder) Record(
	ctx context.Context,
	sub *subscription.Subscription,
	changeType vo.ChangeType,
	change subscription.HistoryChange,
) (*subscription.HistoryEntry, error) {
	entry, err := subscription.NewHistoryEntry(sub, changeType, change)
	if err != nil {
		r.logger.Errorw("failed to build history entry", "error", err, "subscription_id", sub.ID(), "change_type", changeType)
		return nil, fmt.Errorf("failed to build history entry: %w", err)
	}

	if err := r.historyRepo.Create(ctx, entry); err != nil {
		r.logger.Errorw("failed to persist history entry", "error", err, "subscription_id", sub.ID(), "change_type", changeType)
		return nil, fmt.Errorf("failed to persist history entry: %w", err)
	}

	if r.metrics != nil {
		r.metrics.HistoryEntryRecorded(changeType.String())
	}

	r.logger.Debugw("history entry recorded",
		"history_id", entry.ID(),
		"subscription_id", entry.SubscriptionID(),
		"change_type", changeType,
	)

	return entry, nil
}
