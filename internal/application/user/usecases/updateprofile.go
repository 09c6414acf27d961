package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/domain/user"
	vo "github.com/orris-inc/subkeeper/internal/domain/user/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

// UpdateProfileCommand only carries fields a user may change on their own account.
type UpdateProfileCommand struct {
	UserID   uint
	Email    *string
	Password *string
}

type UpdateProfileUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError(user.ErrUserNotFound.Error())
	}

	if cmd.Email == nil && cmd.Password == nil {
		return dto.ToUserResponse(u), nil
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		u.ChangeEmail(email)
	}

	if cmd.Password != nil {
		password, err := vo.NewPassword(*cmd.Password)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := u.SetPassword(password, uc.passwordHasher); err != nil {
			uc.logger.Errorw("failed to hash password", "error", err, "user_id", cmd.UserID)
			return nil, fmt.Errorf("failed to update password: %w", err)
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, apperrors.NewConflictError(user.ErrEmailAlreadyExists.Error())
		}
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("profile updated successfully",
		"user_id", cmd.UserID,
		"email_changed", cmd.Email != nil,
		"password_changed", cmd.Password != nil,
	)

	return dto.ToUserResponse(u), nil
}
