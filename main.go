// File: shareit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareit/config"
	"shareit/database"
	bookingRepoPkg "shareit/database/repository/booking"
	itemRepoPkg "shareit/database/repository/item"
	userRepoPkg "shareit/database/repository/user"
	"shareit/handlers"
	"shareit/metrics"
	"shareit/middleware"
	"shareit/routes"
	"shareit/services/booking"
	"shareit/services/item"
	"shareit/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	cache := utils.GetCacheClient()
	metrics.Register()

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, cache, database.MongoClient)

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	itemRepo := itemRepoPkg.NewMongoItemRepo()
	userRepo := userRepoPkg.NewCachedUserRepo(userRepoPkg.NewMongoUserRepo(), cache, config.AppConfig.UserCacheTTL)

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		ItemRepo: itemRepo,
		UserRepo: userRepo,
		Logger:   logger.Named("booking"),
	}
	itemService := &item.DefaultItemService{
		Repo:     itemRepo,
		UserRepo: userRepo,
		Bookings: bookingService,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, config.AppConfig.DefaultPageSize)
	itemHandler := handlers.NewItemHandler(itemService, config.AppConfig.DefaultPageSize)

	handlerBundle := &handlers.HandlerBundle{
		UserIDHeader: config.AppConfig.UserIDHeader,

		// Booking endpoints.
		CreateBooking:      bookingHandler.CreateBooking,
		DecideBooking:      bookingHandler.DecideBooking,
		GetBooking:         bookingHandler.GetBooking,
		ListBookerBookings: bookingHandler.ListBookerBookings,
		ListOwnerBookings:  bookingHandler.ListOwnerBookings,

		// Item endpoints.
		GetItem:        itemHandler.GetItem,
		ListOwnerItems: itemHandler.ListOwnerItems,

		// Operational endpoints.
		Health:  handlers.HealthHandler,
		Metrics: gin.WrapH(promhttp.Handler()),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

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
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
