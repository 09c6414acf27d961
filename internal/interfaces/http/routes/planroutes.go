package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/infrastructure/permission"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures plan routes. Reads are open to any user, writes need admin grants.
func SetupPlanRoutes(router gin.IRouter, cfg *PlanRouteConfig) {
	perm := cfg.PermissionMiddleware

	plans := router.Group("/plans")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.GET("", perm.RequirePermission(permission.ResourcePlan, permission.ActionRead), cfg.PlanHandler.ListPlans)
		plans.GET("/:id", perm.RequirePermission(permission.ResourcePlan, permission.ActionRead), cfg.PlanHandler.GetPlan)

		plans.POST("", perm.RequirePermission(permission.ResourcePlan, permission.ActionCreate), cfg.PlanHandler.CreatePlan)
		plans.PUT("/:id", perm.RequirePermission(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", perm.RequirePermission(permission.ResourcePlan, permission.ActionDelete), cfg.PlanHandler.DeletePlan)
	}
}
