package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/subkeeper/internal/domain/user"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
	"github.com/orris-inc/subkeeper/internal/shared/db"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailAlreadyExists
		}
		r.logger.Errorw("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return userEntity.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"is_admin":      model.IsAdmin,
			"updated_at":    model.UpdatedAt,
		}).Error
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailAlreadyExists
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// GetSummaryByEmail joins the user with a count of their subscriptions and the
// creation time of the latest one.
func (r *UserRepository) GetSummaryByEmail(ctx context.Context, email string) (*user.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	summary := &user.Summary{
		ID:        model.ID,
		Email:     model.Email,
		IsAdmin:   model.IsAdmin,
		CreatedAt: model.CreatedAt,
	}

	if err := tx.Model(&models.SubscriptionModel{}).
		Where("user_id = ?", model.ID).
		Count(&summary.SubscriptionCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	if summary.SubscriptionCount > 0 {
		var latest models.SubscriptionModel
		if err := tx.Where("user_id = ?", model.ID).
			Order("created_at DESC, id DESC").
			Limit(1).
			Find(&latest).Error; err != nil {
			return nil, fmt.Errorf("failed to get latest subscription: %w", err)
		}
		if latest.ID != 0 {
			createdAt := latest.CreatedAt
			summary.LastSubscriptionDate = &createdAt
		}
	}

	return summary, nil
}
