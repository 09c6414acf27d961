package handlers

import (
	"context"

	"github.com/orris-inc/subkeeper/internal/application/user/dto"
	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
)

// Use case interfaces for UserHandler

type getProfileUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.UserResponse, error)
}

type getUserByEmailUseCase interface {
	Execute(ctx context.Context, query usecases.GetUserByEmailQuery) (*dto.UserSummaryResponse, error)
}
