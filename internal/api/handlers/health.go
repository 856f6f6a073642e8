package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/services"
)

const apiVersion = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	services  *services.Container
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *services.Container, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		services:  container,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	servicesHealth := h.services.Health()

	status := "healthy"
	response := models.HealthResponse{
		Timestamp: time.Now(),
		Version:   apiVersion,
		Uptime:    time.Since(h.startTime).String(),
		Services:  make(map[string]models.ServiceInfo),
	}

	for name, serviceHealth := range servicesHealth {
		info := models.ServiceInfo{LastCheck: time.Now()}

		if healthMap, ok := serviceHealth.(map[string]interface{}); ok {
			if s, ok := healthMap["status"].(string); ok {
				info.Status = s
			}
			if e, ok := healthMap["error"].(string); ok {
				info.Error = e
			}
		}

		// A disabled Redis backend degrades the service but keeps it usable.
		switch info.Status {
		case "unhealthy":
			status = "unhealthy"
		case "disabled", "degraded":
			if status == "healthy" {
				status = "degraded"
			}
		}

		response.Services[name] = info
	}

	response.Status = status

	httpStatus := http.StatusOK
	if status == "unhealthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Check if the API is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	servicesHealth := h.services.Health()

	ready := true
	for name, serviceHealth := range servicesHealth {
		if name == "redis" {
			// Redis is optional; the cache and throttles degrade in-process.
			continue
		}
		if healthMap, ok := serviceHealth.(map[string]interface{}); ok {
			if status, ok := healthMap["status"].(string); ok && status == "unhealthy" {
				ready = false
			}
		}
	}

	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, map[string]interface{}{
		"ready":     ready,
		"services":  servicesHealth,
		"timestamp": time.Now(),
	})
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Description Check if the API is alive and responding
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"uptime":    time.Since(h.startTime).String(),
		"version":   apiVersion,
		"timestamp": time.Now(),
	})
}
