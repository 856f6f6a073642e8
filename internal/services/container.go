package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/config"
)

// Container holds all service dependencies. It owns the Redis client
// lifecycle; everything else is wired here once at startup and injected.
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	CacheService   CacheServiceInterface
	AresService    AresServiceInterface
	JusticeService JusticeServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()
	container.initServices()

	return container, nil
}

// initRedis initializes the Redis client; the cache and throttles degrade to
// in-process fallbacks when the connection fails
func (c *Container) initRedis() {
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.config.Redis.Host, c.config.Redis.Port),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx := context.Background()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.Warn("Redis connection failed, running with in-process cache and throttles")
		c.redisClient = nil
	} else {
		c.logger.Info("Redis connection established")
	}
}

// initServices initializes all services
func (c *Container) initServices() {
	c.CacheService = NewCacheService(c.redisClient, c.logger)

	aresThrottle := NewOutboundThrottle(c.redisClient, aresServiceName, c.config.Ares.ThrottleMax, c.config.Ares.ThrottleWindow, c.logger)
	justiceThrottle := NewOutboundThrottle(c.redisClient, justiceServiceName, c.config.Justice.ThrottleMax, c.config.Justice.ThrottleWindow, c.logger)

	aresClient := NewAresClient(c.config.Ares, c.logger)
	justiceClient := NewJusticeClient(c.config.Justice, c.logger)

	c.AresService = NewAresService(c.config.Ares, aresClient, c.CacheService, aresThrottle, c.logger)
	c.JusticeService = NewJusticeService(c.config.Justice, justiceClient, c.CacheService, justiceThrottle, c.logger)
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			return fmt.Errorf("closing Redis: %w", err)
		}
	}
	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.redisClient != nil {
		ctx := context.Background()
		if err := c.redisClient.Ping(ctx).Err(); err != nil {
			health["redis"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
		} else {
			health["redis"] = map[string]interface{}{
				"status": "healthy",
			}
		}
	} else {
		health["redis"] = map[string]interface{}{
			"status": "disabled",
		}
	}

	if c.AresService != nil {
		health["ares"] = c.AresService.Health()
	}
	if c.JusticeService != nil {
		health["justice"] = c.JusticeService.Health()
	}

	return health
}

// GetRedisClient returns the Redis client
func (c *Container) GetRedisClient() *redis.Client {
	return c.redisClient
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}
