package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/observability"
)

// HealthResponse reports the service and its dependency states
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// HealthCheck pings MongoDB and Redis. A failing dependency degrades
// the overall status and the endpoint answers 503.
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:   "healthy",
		Services: map[string]string{},
	}

	if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
		observability.Logger().Error("mongodb health check failed", zap.Error(err))
		resp.Services["mongodb"] = "unhealthy"
		resp.Status = "degraded"
	} else {
		resp.Services["mongodb"] = "healthy"
	}

	if err := config.Redis.Ping(ctx).Err(); err != nil {
		observability.Logger().Error("redis health check failed", zap.Error(err))
		resp.Services["redis"] = "unhealthy"
		resp.Status = "degraded"
	} else {
		resp.Services["redis"] = "healthy"
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
