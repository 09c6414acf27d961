package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/subkeeper/internal/infrastructure/auth"
	"github.com/orris-inc/subkeeper/internal/infrastructure/config"
	"github.com/orris-inc/subkeeper/internal/infrastructure/lock"
	"github.com/orris-inc/subkeeper/internal/infrastructure/metrics"
	"github.com/orris-inc/subkeeper/internal/infrastructure/permission"
	"github.com/orris-inc/subkeeper/internal/infrastructure/ratelimit"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/handlers"
	"github.com/orris-inc/subkeeper/internal/interfaces/http/middleware"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
)

const limiterCleanupInterval = 5 * time.Minute

// Container holds infrastructure components, repositories, use cases and handlers,
// and wires them together. Redis is optional: without it the rate limiter falls
// back to process memory and subscription creation relies on the database index alone.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   redis.UniversalClient
	metrics *metrics.Collectors

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	// Auth & access
	jwtService *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	enforcer   *permission.Enforcer
	userLocker *lock.RedisUserLocker
	limiter    ratelimit.RateLimiter

	stopBackground context.CancelFunc
}

// NewContainer creates a Container with all dependencies wired together.
// redisClient and collectors may be nil.
func NewContainer(
	db *gorm.DB,
	cfg *config.Config,
	redisClient redis.UniversalClient,
	collectors *metrics.Collectors,
	log logger.Interface,
) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		redis:   redisClient,
		metrics: collectors,
	}

	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	c.enforcer = enforcer

	if c.redis != nil {
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis, c.cfg.RateLimit.RequestsPerMinute, time.Minute)
		c.userLocker = lock.NewRedisUserLocker(
			c.redis,
			time.Duration(c.cfg.Lock.TTLSeconds)*time.Second,
			c.cfg.Lock.Tries,
			c.log,
		)
		c.log.Infow("redis-backed rate limiter and user lock enabled")
		return nil
	}

	memLimiter := ratelimit.NewMemoryRateLimiter(c.cfg.RateLimit.RequestsPerMinute, c.cfg.RateLimit.Burst)
	ctx, cancel := context.WithCancel(context.Background())
	c.stopBackground = cancel
	go memLimiter.RunCleanup(ctx, limiterCleanupInterval)
	c.limiter = memLimiter
	c.log.Warnw("redis disabled, using in-memory rate limiter without cross-process user lock")

	return nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background workers started by the container.
func (c *Container) Shutdown() {
	if c.stopBackground != nil {
		c.stopBackground()
	}
}
