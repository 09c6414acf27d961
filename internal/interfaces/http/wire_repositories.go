package http

import (
	"github.com/orris-inc/subkeeper/internal/domain/subscription"
	"github.com/orris-inc/subkeeper/internal/domain/user"
	"github.com/orris-inc/subkeeper/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	planRepo         subscription.PlanRepository
	subscriptionRepo subscription.SubscriptionRepository
	historyRepo      subscription.HistoryRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db, c.log),
		planRepo:         repository.NewPlanRepository(c.db, c.log),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.log),
		historyRepo:      repository.NewHistoryRepository(c.db, c.log),
	}
}
