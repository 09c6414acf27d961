package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	vo "github.com/orris-inc/subkeeper/internal/domain/subscription/valueobjects"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) *models.PlanModel
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	// JSONMap scans numbers as json.Number; re-decode so values match a freshly built plan.
	features, err := vo.NewPlanFeatures(model.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to decode features of plan %d: %w", model.ID, err)
	}

	entity, err := subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Price,
		model.DurationDays,
		features,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *planMapper) ToModel(entity *subscription.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	return &models.PlanModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Price:        entity.Price(),
		DurationDays: entity.DurationDays(),
		Features:     datatypes.JSONMap(entity.Features()),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
