package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/infrastructure/permission"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user routes.
func SetupUserRoutes(router gin.IRouter, cfg *UserRouteConfig) {
	perm := cfg.PermissionMiddleware

	users := router.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", perm.RequirePermission(permission.ResourceProfile, permission.ActionRead), cfg.UserHandler.GetProfile)
		users.PUT("/me", perm.RequirePermission(permission.ResourceProfile, permission.ActionUpdate), cfg.UserHandler.UpdateProfile)
		users.GET("/email/:email", perm.RequirePermission(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.GetUserByEmail)
	}
}
