// File: wayfarer/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/config"
	"wayfarer/cron"
	"wayfarer/handlers"
	"wayfarer/middleware"
	"wayfarer/routes"
	"wayfarer/services/agent"
	"wayfarer/services/catalog"
	"wayfarer/services/composer"
	"wayfarer/services/payment"
	"wayfarer/store"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// Data files. Either may be missing; the service degrades to synthetic
	// listings and recommendations without travel options.
	catalogIndex, err := catalog.New(config.AppConfig.CatalogPath)
	if err != nil {
		logger.Warn("Catalog unavailable, serving synthetic listings only", zap.Error(err))
	} else {
		logger.Info("Catalog loaded", zap.Int("destinations", catalogIndex.Destinations()))
	}

	transportIndex, err := catalog.NewTransportIndex(config.AppConfig.TransportPath)
	if err != nil {
		logger.Warn("Transport data unavailable, skipping travel options", zap.Error(err))
	}

	// services.
	sessions := store.NewMemoryStore(config.AppConfig.DefaultHomeAirport)
	cron.InitHoldJanitor(sessions)
	composerService := composer.NewComposerService()
	agentService := agent.NewAgentService(catalogIndex, transportIndex, composerService)
	paymentService := payment.NewPaymentService()

	chatHandler := handlers.NewChatHandler(agentService, sessions, paymentService)
	pageHandler := handlers.NewPageHandler()

	routes.RegisterRoutes(router, chatHandler, pageHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Info("main: server stopped gracefully",
		zap.Int("live_sessions", sessions.SessionCount()))
}
