package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/interfaces/http/middleware"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/routes"
	"github.com/orris-inc/subkeeper/internal/shared/constants"
)

// SetupRoutes installs the global middleware chain and every route under the API prefix.
func (c *Container) SetupRoutes() *gin.Engine {
	e := c.engine

	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.RequestID())
	e.Use(middleware.CustomLogger(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())
	if c.metrics != nil {
		e.Use(middleware.Metrics(c.metrics))
	}

	e.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	var recorder middleware.RateLimitRecorder
	if c.metrics != nil {
		recorder = c.metrics
	}

	api := e.Group(constants.APIVersionPrefix)
	api.Use(middleware.RateLimit(c.limiter, recorder, c.log))

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler:          c.hdlrs.planHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  c.hdlrs.subscriptionHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	return e
}
