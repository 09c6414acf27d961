package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures the public authentication routes.
func SetupAuthRoutes(router gin.IRouter, cfg *AuthRouteConfig) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
