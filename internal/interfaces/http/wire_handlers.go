package http

import (
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	u := c.ucs
	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(sqlDB, c.log),
		authHandler:   handlers.NewAuthHandler(u.registerUC, u.loginUC, c.log),
		userHandler:   handlers.NewUserHandler(u.getProfileUC, u.updateProfileUC, u.getUserByEmailUC, c.log),
		planHandler: handlers.NewPlanHandler(
			u.createPlanUC, u.updatePlanUC, u.getPlanUC, u.listPlansUC, u.deletePlanUC, c.log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(handlers.SubscriptionUseCases{
			Create:         u.createSubscriptionUC,
			Update:         u.updateSubscriptionUC,
			Cancel:         u.cancelSubscriptionUC,
			Get:            u.getSubscriptionUC,
			ListByUser:     u.listUserSubscriptionsUC,
			ListByStatus:   u.listSubscriptionsByStatusUC,
			GetHistory:     u.getSubscriptionHistoryUC,
			GetUserHistory: u.getUserHistoryUC,
		}, c.log),
	}
	return nil
}
