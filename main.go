// File: arakucamp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arakucamp/config"
	"arakucamp/cron"
	"arakucamp/database"
	"arakucamp/database/repository"
	"arakucamp/handlers"
	"arakucamp/middleware"
	"arakucamp/routes"
	"arakucamp/services/booking"
	"arakucamp/services/content"
	"arakucamp/services/payment"
	"arakucamp/services/support"
	"arakucamp/services/tasks"
	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	supportRepo := repository.NewMongoSupportRepo()
	contentRepo := repository.NewMongoContentRepo()

	// Services.
	cfg := config.AppConfig
	inventory := booking.Inventory{
		TotalTents:      cfg.TotalTents,
		ReservedTents:   cfg.ReservedTents,
		NightlyRate:     cfg.TentNightlyRate,
		TaxRate:         cfg.TaxRate,
		AdvanceFraction: cfg.AdvanceFraction,
	}
	availabilityService := &booking.DefaultAvailabilityService{
		Repo:      bookingRepo,
		Inventory: inventory,
	}
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), time.Duration(cfg.PaymentHoldMinutes)*time.Minute)
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	expiryScheduler := tasks.NewAsynqExpiryScheduler()

	wizard := booking.NewDefaultBookingWizard(
		sessionStore,
		availabilityService,
		bookingRepo,
		gateway,
		expiryScheduler,
		inventory,
		cfg.OpenMonths,
		cfg.RazorpayKeyID,
		time.Duration(cfg.PaymentHoldMinutes)*time.Minute,
	)
	wizard.Poller.
		WithInterval(time.Duration(cfg.PollIntervalSeconds) * time.Second).
		WithAttempts(cfg.PollMaxAttempts)

	historyService := &booking.DefaultHistoryService{Repo: bookingRepo}
	supportService := &support.DefaultSupportService{Repo: supportRepo, Bookings: bookingRepo}
	contentService := &content.DefaultContentService{Repo: contentRepo}

	handlers.Init(wizard, historyService, supportService, contentService)
	routes.RegisterRoutes(router)

	// Background workers and monitors.
	cron.InitExpiryWorker(bookingRepo)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
