package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tidyhouse/config"
	"tidyhouse/cron"
	"tidyhouse/database"
	bookingsRepo "tidyhouse/database/repository/bookings"
	"tidyhouse/handlers"
	"tidyhouse/middleware"
	"tidyhouse/routes"
	"tidyhouse/services/booking"
	"tidyhouse/services/notification"
	"tidyhouse/services/payment"
	"tidyhouse/services/sms"
	"tidyhouse/services/tasks"
	"tidyhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingsRepo.NewMongoBookingRepo()

	// outbound clients.
	smsClient := sms.NewTwilioClient(sms.Config{
		AccountSID:          config.AppConfig.TwilioAccountSID,
		AuthToken:           config.AppConfig.TwilioAuthToken,
		MessagingServiceSID: config.AppConfig.TwilioMessagingServiceSID,
		FromNumber:          config.AppConfig.TwilioFromNumber,
	}, logger)

	mailer := &notification.BookingMailer{
		Sender: notification.NewSendGridSender(notification.SendGridConfig{
			APIKey:    config.AppConfig.SendGridAPIKey,
			FromName:  config.AppConfig.BusinessName,
			FromEmail: config.AppConfig.BusinessEmail,
		}, logger),
		BusinessName:  config.AppConfig.BusinessName,
		BusinessEmail: config.AppConfig.BusinessEmail,
		BusinessPhone: config.AppConfig.BusinessPhone,
	}

	checkoutService := payment.NewStripeCheckout(
		config.AppConfig.SiteURL,
		config.AppConfig.StripeWebhookSecret,
		config.AppConfig.BusinessName,
		logger,
	)

	reminderScheduler := tasks.NewAsynqScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}, logger)

	// services.
	sessionService := &booking.DefaultSessionService{
		Cache:    utils.GetCacheClient(),
		Checkout: checkoutService,
		Logger:   logger,
	}

	bookingManager := &booking.DefaultBookingManager{
		Repo:      bookingRepo,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	commandRouter := &sms.CommandRouter{
		Canceller:    bookingManager,
		SiteURL:      config.AppConfig.SiteURL,
		SupportPhone: config.AppConfig.BusinessPhone,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(sessionService, logger),
		StripeWebhook: &handlers.StripeWebhookHandler{
			Checkout:  checkoutService,
			Repo:      bookingRepo,
			Reminders: reminderScheduler,
			Mailer:    mailer,
			Logger:    logger,
		},
		SMSWebhook: &handlers.SMSWebhookHandler{
			Router: commandRouter,
			Client: smsClient,
			Logger: logger,
		},
		Contact: &handlers.ContactHandler{
			Mailer: mailer,
			Logger: logger,
		},
		Admin: &handlers.AdminHandler{
			Manager: bookingManager,
			SMS:     smsClient,
			Logger:  logger,
		},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker alongside the HTTP server.
	cron.InitReminderWorker(smsClient, bookingRepo, config.AppConfig.BusinessName)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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
