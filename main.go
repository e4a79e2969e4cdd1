// File: fittribe/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittribe/config"
	"fittribe/cron"
	"fittribe/database"
	bookingRepoPkg "fittribe/database/repository/booking"
	trainerRepoPkg "fittribe/database/repository/trainer"
	userRepoPkg "fittribe/database/repository/user"
	"fittribe/handlers"
	"fittribe/middleware"
	"fittribe/routes"
	"fittribe/services/booking"
	"fittribe/services/directory"
	"fittribe/services/payment"
	"fittribe/services/tasks"
	"fittribe/services/user"
	"fittribe/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	directoryService := &directory.DefaultDirectoryService{
		Repo:  trainerRepo,
		Cache: utils.GetCacheClient(),
	}

	var gateway payment.Gateway
	if config.AppConfig.PaymentGateway == "stripe" {
		gateway = payment.NewStripeGateway(logger)
	} else {
		gateway = payment.NewSimulatedGateway(logger)
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	draftStore := booking.NewRedisDraftStore(
		utils.GetDraftCacheClient(),
		time.Duration(config.AppConfig.DraftTTLMinutes)*time.Minute,
	)
	draftPipeline := &booking.DefaultDraftPipeline{
		Store:       draftStore,
		Prices:      booking.PriceTableFromConfig(),
		TrainerRepo: trainerRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Gateway:     gateway,
		Reminders:   reminderScheduler,
	}

	// Background workers: reminder delivery and booking completion sweep.
	cron.InitReminderWorker(userRepo)
	cron.InitCompletionSweeper(bookingRepo)

	// Periodic dependency health checks for the /health endpoint.
	healthMonitor := utils.NewHealthMonitor(
		time.Duration(config.AppConfig.HealthIntervalSec) * time.Second,
	)
	healthMonitor.Register("mongo", utils.MongoProbe(database.MongoClient))
	healthMonitor.Register("rosterCache", utils.RedisProbe(utils.GetCacheClient()))
	healthMonitor.Register("draftStore", utils.RedisProbe(utils.GetDraftCacheClient()))
	healthMonitor.Register("reminderQueue", utils.RedisProbe(utils.GetReminderQueueClient()))
	healthMonitor.Start()
	utils.SetDefaultHealthMonitor(healthMonitor)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:       userRepo,
		TrainerHandler: handlers.NewTrainerHandler(directoryService),
		BookingHandler: handlers.NewBookingHandler(draftPipeline, bookingRepo, logger),
		UserHandler:    handlers.NewUserHandler(userService),
		StorageHandler: handlers.NewStorageHandler(cloudinaryStorageService, trainerRepo),
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
