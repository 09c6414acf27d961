package handlers

import (
	"context"

	subdto "github.com/orris-inc/subkeeper/internal/application/subscription/dto"
	"github.com/orris-inc/subkeeper/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type updateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelSubscriptionCommand) error
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) (*subdto.SubscriptionDTO, error)
}

type listUserSubscriptionsUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*subdto.SubscriptionDTO, error)
}

type listSubscriptionsByStatusUseCase interface {
	Execute(ctx context.Context, status string) ([]*subdto.SubscriptionDTO, error)
}

type getSubscriptionHistoryUseCase interface {
	Execute(ctx context.Context, query usecases.GetSubscriptionHistoryQuery) ([]*subdto.HistoryEntryDTO, error)
}

type getUserHistoryUseCase interface {
	Execute(ctx context.Context, userID uint) (map[uint][]*subdto.HistoryEntryDTO, error)
}
