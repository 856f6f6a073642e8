package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gtdn/registry-api/internal/api/handlers"
	"github.com/gtdn/registry-api/internal/api/middleware"
	"github.com/gtdn/registry-api/internal/config"
	"github.com/gtdn/registry-api/internal/services"
)

// Server represents the HTTP server
type Server struct {
	Router   *gin.Engine
	config   *config.Config
	logger   *logrus.Logger
	services *services.Container
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, container *services.Container) *Server {
	server := &Server{
		config:   cfg,
		logger:   logger,
		services: container,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	rateLimiter := middleware.NewRateLimiter(s.config.Security.RateLimit)
	s.Router.Use(rateLimiter.Middleware())

	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	if s.config.Server.Environment != "production" {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	{
		registryHandler := handlers.NewRegistryHandler(s.services.AresService, s.logger)
		registry := v1.Group("/registry")
		{
			registry.POST("/search", registryHandler.Search)
			registry.POST("/subject/batch", registryHandler.GetSubjectBatch)
			registry.GET("/subject/:ico", registryHandler.GetSubject)
		}

		filingsHandler := handlers.NewFilingsHandler(s.services.JusticeService, s.logger)
		filings := v1.Group("/filings")
		{
			filings.GET("/document", filingsHandler.GetDocument)
			filings.GET("/search", filingsHandler.SearchCompanies)
		}

		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("/clear", cacheHandler.Clear)
			cache.DELETE("/subject/:ico", cacheHandler.DeleteSubject)
		}
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Not Found",
			"path":      c.Request.URL.Path,
			"timestamp": time.Now(),
		})
	})

	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "Method Not Allowed",
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
			"timestamp": time.Now(),
		})
	})
}
