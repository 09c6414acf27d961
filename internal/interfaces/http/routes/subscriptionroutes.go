// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/infrastructure/permission"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription and history routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures subscription routes. Ownership of a single
// subscription is checked by the use cases, which report foreign rows as not found.
func SetupSubscriptionRoutes(router gin.IRouter, cfg *SubscriptionRouteConfig) {
	perm := cfg.PermissionMiddleware
	h := cfg.SubscriptionHandler

	subs := router.Group("/subscriptions")
	subs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subs.GET("", perm.RequirePermission(permission.ResourceSubscription, permission.ActionRead), h.ListUserSubscriptions)
		subs.POST("", perm.RequirePermission(permission.ResourceSubscription, permission.ActionCreate), h.CreateSubscription)

		// Static segments are registered before /:id.
		subs.GET("/status/:status", perm.RequirePermission(permission.ResourceSubscription, permission.ActionList), h.ListSubscriptionsByStatus)
		subs.GET("/history", perm.RequirePermission(permission.ResourceHistory, permission.ActionRead), h.GetUserHistory)
		subs.GET("/history/:id", perm.RequirePermission(permission.ResourceHistory, permission.ActionRead), h.GetSubscriptionHistory)

		subs.GET("/:id", perm.RequirePermission(permission.ResourceSubscription, permission.ActionRead), h.GetSubscription)
		subs.PUT("/:id", perm.RequirePermission(permission.ResourceSubscription, permission.ActionUpdate), h.UpdateSubscription)
		subs.DELETE("/:id", perm.RequirePermission(permission.ResourceSubscription, permission.ActionCancel), h.CancelSubscription)
	}
}
