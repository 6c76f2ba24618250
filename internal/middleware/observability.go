package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/observability"
)

// RequestID adds a unique request ID to the context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("RequestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		observability.Logger().Info("request completed",
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("RequestID")),
		)

		observability.RequestDuration.WithLabelValues(
			path,
			c.Request.Method,
			strconv.Itoa(status),
		).Observe(latency.Seconds())
	}
}

// RequestTracker tracks active connections
func RequestTracker() gin.HandlerFunc {
	return func(c *gin.Context) {
		observability.ActiveConnections.Inc()
		defer observability.ActiveConnections.Dec()
		c.Next()
	}
}

// RequestTiming wraps every request in a trace span
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("http").Start(c.Request.Context(), "http.request")
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}
