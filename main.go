package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careindex/config"
	statsCron "careindex/cron"
	providerRepo "careindex/database/repository/provider"
	referenceRepo "careindex/database/repository/reference"
	"careindex/database/seed"
	"careindex/handlers"
	"careindex/middleware"
	"careindex/routes"
	"careindex/services/directory"
	"careindex/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// repositories.
	provRepo := providerRepo.NewMemoryProviderRepo()
	refRepo := referenceRepo.NewMemoryReferenceRepo()
	if err := seed.Load(provRepo, refRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed directory data: %v", err)
	}

	// Optional Redis-backed search cache.
	var searchCache directory.SearchCache
	if config.AppConfig.CacheEnabled {
		ttl := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
		searchCache = directory.NewRedisSearchCache(utils.GetCacheClient(), ttl)
	}

	directoryService, err := directory.NewDefaultDirectoryService(provRepo, refRepo, searchCache)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize directory service: %v", err)
	}

	providerHandler := handlers.NewProviderHandler(directoryService)
	referenceHandler := handlers.NewReferenceHandler(directoryService)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListProvidersHandler:   providerHandler.ListProvidersHandler,
		GetProviderByIDHandler: providerHandler.GetProviderByIDHandler,
		CreateProviderHandler:  providerHandler.CreateProviderHandler,
		FilterProvidersHandler: providerHandler.FilterProvidersHandler,

		ListSpecialtiesHandler:    referenceHandler.ListSpecialtiesHandler,
		ListInsurancePlansHandler: referenceHandler.ListInsurancePlansHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic stats refresh for the Prometheus gauges.
	scheduler, err := statsCron.StartStatsRefresher(directoryService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start stats refresher: %v", err)
	}

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

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
