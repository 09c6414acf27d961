package mappers

import (
	"fmt"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
)

type HistoryMapper interface {
	ToEntity(model *models.SubscriptionHistoryModel) (*subscription.HistoryEntry, error)
	ToModel(entity *subscription.HistoryEntry) *models.SubscriptionHistoryModel
	ToEntities(models []*models.SubscriptionHistoryModel) ([]*subscription.HistoryEntry, error)
}

type historyMapper struct{}

func NewHistoryMapper() HistoryMapper {
	return &historyMapper{}
}

func (m *historyMapper) ToEntity(model *models.SubscriptionHistoryModel) (*subscription.HistoryEntry, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructHistoryEntry(
		model.ID,
		model.SubscriptionID,
		model.UserID,
		model.OldPlanID,
		model.NewPlanID,
		toStatus(model.OldStatus),
		toStatus(model.NewStatus),
		vo.ChangeType(model.ChangeType),
		model.ChangedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct history entry %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *historyMapper) ToModel(entity *subscription.HistoryEntry) *models.SubscriptionHistoryModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriptionHistoryModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		UserID:         entity.UserID(),
		OldPlanID:      entity.OldPlanID(),
		NewPlanID:      entity.NewPlanID(),
		OldStatus:      fromStatus(entity.OldStatus()),
		NewStatus:      fromStatus(entity.NewStatus()),
		ChangeType:     entity.ChangeType().String(),
		ChangedAt:      entity.ChangedAt(),
	}
}

func (m *historyMapper) ToEntities(historyModels []*models.SubscriptionHistoryModel) ([]*subscription.HistoryEntry, error) {
	entities := make([]*subscription.HistoryEntry, 0, len(historyModels))
	for _, model := range historyModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func toStatus(s *string) *vo.SubscriptionStatus {
	if s == nil {
		return nil
	}
	status := vo.SubscriptionStatus(*s)
	return &status
}

func fromStatus(status *vo.SubscriptionStatus) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}
