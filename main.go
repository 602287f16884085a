// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/database"
	bookingRepoPkg "salonbook/database/repository/booking"
	serviceRepoPkg "salonbook/database/repository/service"
	timeslotRepoPkg "salonbook/database/repository/timeslot"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/admin"
	"salonbook/services/booking"
	"salonbook/services/catalog"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	timeslotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	for _, repo := range []interface{ EnsureIndexes() error }{serviceRepo, timeslotRepo, bookingRepo} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	catalogService := &catalog.DefaultCatalogService{
		ServiceRepo:  serviceRepo,
		TimeSlotRepo: timeslotRepo,
		BookingRepo:  bookingRepo,
	}
	if err := catalogService.RefreshAll(context.Background()); err != nil {
		logger.Sugar().Warnf("main: initial catalog load failed: %v", err)
	}

	admissionService := &booking.DefaultAdmissionService{
		Repo:    bookingRepo,
		Catalog: catalogService,
	}
	editorService := &admin.DefaultEditorService{
		ServiceRepo:  serviceRepo,
		TimeSlotRepo: timeslotRepo,
		Catalog:      catalogService,
	}
	authService := &admin.DefaultAuthService{
		Sessions:   utils.GetAuthCacheClient(),
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Booking:     handlers.NewBookingHandler(admissionService, catalogService, logger),
		Admin:       handlers.NewAdminHandler(editorService),
		Auth:        handlers.NewAuthHandler(authService),
		AuthService: authService,
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
