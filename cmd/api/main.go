package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/handlers"
	"github.com/dnl4/brasil/internal/logging"
	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/observability"
	"github.com/dnl4/brasil/internal/services"
)

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Wire services
	verificationStore := services.NewVerificationStore(config.AppConfig.PhoneVerificationTTL, logging.Logger)
	handlers.Init(logging.Logger, verificationStore)

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Health check endpoint
		v1.GET("/health", handlers.HealthCheck)

		// Public lookups
		v1.GET("/ratings", handlers.ListRatings)
		v1.GET("/services", handlers.ListServices)
		v1.GET("/suggestions", handlers.ListSuggestions)
		v1.GET("/suggestions/stream", handlers.StreamSuggestions)
		v1.GET("/users/display-name/availability", handlers.CheckDisplayNameAvailability)

		// Authenticated routes
		auth := v1.Group("")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.GET("/users/me", handlers.GetProfile)
			auth.PUT("/users/me", handlers.UpdateProfile)

			auth.POST("/phone/verification", handlers.SendPhoneVerification)
			auth.POST("/phone/verification/validate", handlers.ValidatePhoneVerification)

			auth.POST("/ratings", handlers.CreateRating)
			auth.PUT("/ratings/:id", handlers.UpdateRating)
			auth.DELETE("/ratings/:id", handlers.DeleteRating)
			auth.GET("/ratings/mine", handlers.ListMyRatings)

			auth.POST("/reports", handlers.CreateReport)

			auth.POST("/suggestions", handlers.CreateSuggestion)
			auth.POST("/suggestions/:id/vote", handlers.VoteSuggestion)
			auth.DELETE("/suggestions/:id/vote", handlers.UnvoteSuggestion)

			// Admin surface
			admin := auth.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/reports", handlers.ListReports)
				admin.PATCH("/suggestions/:id/status", handlers.UpdateSuggestionStatus)
			}
		}
	}

	// Create server with timeouts. No WriteTimeout: the suggestion
	// stream holds its connection open indefinitely.
	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
