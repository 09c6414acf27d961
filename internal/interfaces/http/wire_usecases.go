package http

import (
	subscriptionUsecases "github.com/orris-inc/subkeeper/internal/application/subscription/usecases"
	"github.com/orris-inc/subkeeper/internal/application/user/usecases"
	"github.com/orris-inc/subkeeper/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC       *usecases.RegisterWithPasswordUseCase
	loginUC          *usecases.LoginWithPasswordUseCase
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	getUserByEmailUC *usecases.GetUserByEmailUseCase

	// Plan
	createPlanUC *subscriptionUsecases.CreatePlanUseCase
	updatePlanUC *subscriptionUsecases.UpdatePlanUseCase
	getPlanUC    *subscriptionUsecases.GetPlanUseCase
	listPlansUC  *subscriptionUsecases.ListPlansUseCase
	deletePlanUC *subscriptionUsecases.DeletePlanUseCase

	// Subscription lifecycle
	historyRecorder             *subscriptionUsecases.HistoryRecorder
	createSubscriptionUC        *subscriptionUsecases.CreateSubscriptionUseCase
	updateSubscriptionUC        *subscriptionUsecases.UpdateSubscriptionUseCase
	cancelSubscriptionUC        *subscriptionUsecases.CancelSubscriptionUseCase
	getSubscriptionUC           *subscriptionUsecases.GetSubscriptionUseCase
	listUserSubscriptionsUC     *subscriptionUsecases.ListUserSubscriptionsUseCase
	listSubscriptionsByStatusUC *subscriptionUsecases.ListSubscriptionsByStatusUseCase

	// History
	getSubscriptionHistoryUC *subscriptionUsecases.GetSubscriptionHistoryUseCase
	getUserHistoryUC         *subscriptionUsecases.GetUserHistoryUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	txManager := db.NewTransactionManager(c.db)

	ucs := &allUseCases{
		registerUC:       usecases.NewRegisterWithPasswordUseCase(r.userRepo, c.hasher, c.jwtService, c.log),
		loginUC:          usecases.NewLoginWithPasswordUseCase(r.userRepo, c.hasher, c.jwtService, c.log),
		getProfileUC:     usecases.NewGetProfileUseCase(r.userRepo, c.log),
		updateProfileUC:  usecases.NewUpdateProfileUseCase(r.userRepo, c.hasher, c.log),
		getUserByEmailUC: usecases.NewGetUserByEmailUseCase(r.userRepo, c.log),

		createPlanUC: subscriptionUsecases.NewCreatePlanUseCase(r.planRepo, c.log),
		updatePlanUC: subscriptionUsecases.NewUpdatePlanUseCase(r.planRepo, c.log),
		getPlanUC:    subscriptionUsecases.NewGetPlanUseCase(r.planRepo, c.log),
		listPlansUC:  subscriptionUsecases.NewListPlansUseCase(r.planRepo, c.log),
		deletePlanUC: subscriptionUsecases.NewDeletePlanUseCase(r.planRepo, c.log),

		historyRecorder: subscriptionUsecases.NewHistoryRecorder(r.historyRepo, c.log),
	}

	ucs.createSubscriptionUC = subscriptionUsecases.NewCreateSubscriptionUseCase(
		r.subscriptionRepo, r.planRepo, ucs.historyRecorder, txManager, c.log,
	)
	ucs.updateSubscriptionUC = subscriptionUsecases.NewUpdateSubscriptionUseCase(
		r.subscriptionRepo, r.planRepo, ucs.historyRecorder, txManager, c.log,
	)
	ucs.cancelSubscriptionUC = subscriptionUsecases.NewCancelSubscriptionUseCase(r.subscriptionRepo, txManager, c.log)
	ucs.getSubscriptionUC = subscriptionUsecases.NewGetSubscriptionUseCase(r.subscriptionRepo, r.planRepo, c.log)
	ucs.listUserSubscriptionsUC = subscriptionUsecases.NewListUserSubscriptionsUseCase(r.subscriptionRepo, r.planRepo, c.log)
	ucs.listSubscriptionsByStatusUC = subscriptionUsecases.NewListSubscriptionsByStatusUseCase(r.subscriptionRepo, r.planRepo, c.log)

	ucs.getSubscriptionHistoryUC = subscriptionUsecases.NewGetSubscriptionHistoryUseCase(
		r.subscriptionRepo, r.historyRepo, r.planRepo, c.log,
	)
	ucs.getUserHistoryUC = subscriptionUsecases.NewGetUserHistoryUseCase(
		r.subscriptionRepo, r.historyRepo, r.planRepo, c.log,
	)

	if c.metrics != nil {
		ucs.historyRecorder.SetMetrics(c.metrics)
		ucs.createSubscriptionUC.SetMetrics(c.metrics)
	}
	if c.userLocker != nil {
		ucs.createSubscriptionUC.SetUserLocker(c.userLocker)
	}

	c.ucs = ucs
}
