package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/domain/user"
	vo "github.com/orris-inc/subkeeper/internal/domain/user/valueobjects"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type CreateAdminCommand struct {
	Email    string
	Password string
}

// CreateAdminUseCase bootstraps an administrator. An existing account with the
// same email is promoted and its password reset.
type CreateAdminUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateAdminUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.UserResponse, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existing != nil {
		existing.PromoteToAdmin()
		if err := existing.SetPassword(password, uc.passwordHasher); err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
		uc.logger.Infow("existing user promoted to admin", "user_id", existing.ID())
		return dto.ToUserResponse(existing), nil
	}

	admin, err := user.NewUser(email, password, true, uc.passwordHasher)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	uc.logger.Infow("admin user created", "user_id", admin.ID())
	return dto.ToUserResponse(admin), nil
}
