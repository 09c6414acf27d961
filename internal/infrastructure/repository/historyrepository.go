package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
	"github.com/orris-inc/subkeeper/internal/shared/db"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// HistoryRepositoryImpl only inserts and reads; there is no update or delete path.
type HistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HistoryMapper
	logger logger.Interface
}

func NewHistoryRepository(db *gorm.DB, logger logger.Interface) subscription.HistoryRepository {
	return &HistoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewHistoryMapper(),
		logger: logger,
	}
}

func (r *HistoryRepositoryImpl) Create(ctx context.Context, entry *subscription.HistoryEntry) error {
	model := r.mapper.ToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create history entry",
			"subscription_id", model.SubscriptionID,
			"change_type", model.ChangeType,
			"error", err,
		)
		return fmt.Errorf("failed to create history entry: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *HistoryRepositoryImpl) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.HistoryEntry, error) {
	var historyModels []*models.SubscriptionHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID).
		Order("changed_at DESC, id DESC").
		Find(&historyModels).Error; err != nil {
		r.logger.Errorw("failed to list history by subscription", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to list subscription history: %w", err)
	}

	return r.mapper.ToEntities(historyModels)
}

func (r *HistoryRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*subscription.HistoryEntry, error) {
	var historyModels []*models.SubscriptionHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("changed_at DESC, id DESC").
		Find(&historyModels).Error; err != nil {
		r.logger.Errorw("failed to list history by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list user history: %w", err)
	}

	return r.mapper.ToEntities(historyModels)
}
