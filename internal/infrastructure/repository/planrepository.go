package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
	"github.com/orris-inc/subkeeper/internal/shared/db"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *subscription.Plan) error {
	model := r.mapper.ToModel(plan)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return subscription.ErrPlanNameExists
		}
		r.logger.Errorw("failed to create subscription plan", "error", err, "name", plan.Name())
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription plan created successfully", "plan_id", model.ID, "name", plan.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs returns the plans that still exist, keyed by id.
func (r *PlanRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*subscription.Plan, error) {
	result := make(map[uint]*subscription.Plan, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to get subscription plans by IDs", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get subscription plans by IDs: %w", err)
	}

	plans, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		result[plan.ID()] = plan
	}
	return result, nil
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*subscription.Plan, error) {
	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Order("price ASC, id ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list subscription plans", "error", err)
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *subscription.Plan) error {
	model := r.mapper.ToModel(plan)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", plan.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"price":         model.Price,
			"duration_days": model.DurationDays,
			"features":      model.Features,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return subscription.ErrPlanNameExists
		}
		r.logger.Errorw("failed to update subscription plan", "error", result.Error, "plan_id", plan.ID())
		return fmt.Errorf("failed to update subscription plan: %w", result.Error)
	}

	r.logger.Infow("subscription plan updated successfully", "plan_id", plan.ID())
	return nil
}

// Delete removes the row permanently. Subscriptions and history keep their plan ids.
func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete subscription plan: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return subscription.ErrPlanNotFound
	}

	r.logger.Infow("subscription plan deleted successfully", "plan_id", id)
	return nil
}
