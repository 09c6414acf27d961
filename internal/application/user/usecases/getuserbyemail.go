package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/domain/user"
	apperrors "github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

type GetUserByEmailQuery struct {
	Email            string
	RequesterID      uint
	RequesterIsAdmin bool
}

type GetUserByEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserByEmailUseCase(userRepo user.Repository, logger logger.Interface) *GetUserByEmailUseCase {
	return &GetUserByEmailUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute returns the user summary. Non-admin requesters can only look up
// themselves; any other email is reported as not found.
func (uc *GetUserByEmailUseCase) Execute(ctx context.Context, query GetUserByEmailQuery) (*dto.UserSummaryResponse, error) {
	email := strings.ToLower(strings.TrimSpace(query.Email))
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	summary, err := uc.userRepo.GetSummaryByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user summary", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if summary == nil {
		return nil, apperrors.NewNotFoundError(user.ErrUserNotFound.Error())
	}
	if !query.RequesterIsAdmin && summary.ID != query.RequesterID {
		uc.logger.Warnw("user lookup denied", "requester_id", query.RequesterID, "target_id", summary.ID)
		return nil, apperrors.NewNotFoundError(user.ErrUserNotFound.Error())
	}

	return dto.ToUserSummaryResponse(summary), nil
}
