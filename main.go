// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	bookingRepo "voyago/database/repository/booking"
	catalogRepo "voyago/database/repository/catalog"
	couponRepo "voyago/database/repository/coupon"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/catalog"
	"voyago/services/coupon"
	"voyago/services/wizard"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()
	utils.StartHealthMonitor(utils.GetDraftCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	cpnRepo := couponRepo.NewMongoCouponRepo()
	bkgRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: catRepo}
	couponService := &coupon.DefaultCouponService{Repo: cpnRepo}

	draftStore := wizard.NewRedisDraftStore(
		utils.GetDraftCacheClient(),
		time.Duration(config.AppConfig.DraftTTLMinutes)*time.Minute,
	)
	manager := wizard.NewManager(
		draftStore,
		logger,
		config.AppConfig.DefaultCurrency,
		time.Duration(config.AppConfig.AutosaveSeconds)*time.Second,
	)
	manager.RunAutosave()

	// handlers.
	wizardHandler := handlers.NewWizardHandler(
		manager, catalogService, couponService, bkgRepo, logger,
		time.Duration(config.AppConfig.DraftTTLMinutes)*time.Minute,
		config.AppConfig.MaxSpecialReqLen,
	)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	routes.RegisterRoutes(router, wizardHandler, catalogHandler)

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

	// Final draft checkpoints must land before the sessions are discarded.
	manager.Shutdown(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
