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

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	IPAddress string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// Execute answers every credential failure with the same error so that
// callers cannot probe which emails are registered.
func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*dto.AuthResponse, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		uc.logger.Warnw("login attempt for unknown email", "ip_address", cmd.IPAddress)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := existing.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", existing.ID(), "ip_address", cmd.IPAddress)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	result, err := issueAuthResponse(uc.tokenIssuer, existing)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID(), "ip_address", cmd.IPAddress)
	return result, nil
}
