// File: lstours/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lstours/config"
	"lstours/database"
	catalogRepo "lstours/database/repository/catalog"
	"lstours/handlers"
	"lstours/middleware"
	"lstours/routes"
	"lstours/services/catalog"
	"lstours/services/inquiry"
	"lstours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Load the fixed dataset; there is no external data source.
	dataset := database.Load()
	utils.SetDatasetHealthy(len(dataset.Packages) > 0)

	if err := utils.InitViewCache(); err != nil {
		logger.Warn("main: view cache unavailable, computing views in-process", zap.Error(err))
	}
	utils.StartHealthMonitor(utils.GetViewCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	latency := time.Duration(config.AppConfig.MockLatencyMS) * time.Millisecond
	pkgRepo := catalogRepo.NewMemoryPackageRepo(dataset, latency)
	destRepo := catalogRepo.NewMemoryDestinationRepo(dataset, latency)
	contentRepo := catalogRepo.NewMemoryContentRepo(dataset, latency)

	// Services.
	catalogService := catalog.NewDefaultCatalogService(pkgRepo, destRepo, utils.GetViewCacheClient(), logger)
	stateStore := catalog.NewStateStore(config.AppConfig.ItemsPerPage)

	inquiryService := &inquiry.DefaultInquiryService{
		WhatsAppNumber: config.AppConfig.WhatsAppNumber,
		Latency:        latency,
		Logger:         logger,
	}

	// Handlers.
	packageHandler := handlers.NewPackageHandler(catalogService, config.AppConfig.ItemsPerPage, logger)
	destinationHandler := handlers.NewDestinationHandler(catalogService, logger)
	contentHandler := handlers.NewContentHandler(contentRepo, logger)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, catalogService, logger)
	sessionHandler := handlers.NewSessionHandler(stateStore, catalogService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Package endpoints.
		ListPackagesHandler:        packageHandler.ListPackages,
		GetPackageBySlugHandler:    packageHandler.GetPackageBySlug,
		GetFeaturedPackagesHandler: packageHandler.GetFeaturedPackages,
		GetPackagesByRegionHandler: packageHandler.GetPackagesByRegion,
		GetPackageItineraryHandler: packageHandler.GetPackageItinerary,

		// Destination endpoints.
		ListDestinationsHandler:        destinationHandler.ListDestinations,
		GetDestinationBySlugHandler:    destinationHandler.GetDestinationBySlug,
		GetDestinationsByRegionHandler: destinationHandler.GetDestinationsByRegion,

		// Content endpoints.
		GetServicesHandler:     contentHandler.GetServices,
		GetTestimonialsHandler: contentHandler.GetTestimonials,

		// Inquiry endpoints.
		SubmitInquiryHandler:   inquiryHandler.SubmitInquiry,
		QuoteLinkHandler:       inquiryHandler.QuoteLink,
		ReservationLinkHandler: inquiryHandler.ReservationLink,
		TripRequestLinkHandler: inquiryHandler.TripRequestLink,

		// Session endpoints.
		SetFiltersHandler:   sessionHandler.SetFilters,
		ResetFiltersHandler: sessionHandler.ResetFilters,
		SetPageHandler:      sessionHandler.SetPage,
		GetViewHandler:      sessionHandler.GetView,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
