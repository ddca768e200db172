package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbanfix/config"
	"urbanfix/database"
	bookingRepoPkg "urbanfix/database/repository/booking"
	messageRepoPkg "urbanfix/database/repository/message"
	providerRepoPkg "urbanfix/database/repository/provider"
	reviewRepoPkg "urbanfix/database/repository/review"
	userRepoPkg "urbanfix/database/repository/user"
	"urbanfix/handlers"
	"urbanfix/middleware"
	"urbanfix/routes"
	"urbanfix/services/admin"
	"urbanfix/services/booking"
	"urbanfix/services/message"
	"urbanfix/services/provider"
	"urbanfix/services/review"
	"urbanfix/services/storage"
	"urbanfix/services/user"
	"urbanfix/utils"

	"github.com/gin-gonic/gin"
)

type indexEnsurer interface {
	EnsureIndexes() error
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	db, err := database.Connect(config.AppConfig.DatabaseURL, config.AppConfig.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	authCache, err := utils.NewAuthCache(config.AppConfig)
	if err != nil {
		logger.Sugar().Warnf("main: auth cache unavailable, falling back to DB lookups: %v", err)
		authCache = nil
	}

	storageService, err := storage.NewCloudinaryStorage(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	provRepo := providerRepoPkg.NewMongoProviderRepo(db)
	bookRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	revRepo := reviewRepoPkg.NewMongoReviewRepo(db)
	msgRepo := messageRepoPkg.NewMongoMessageRepo(db)

	for _, repo := range []indexEnsurer{
		userRepo.(indexEnsurer),
		provRepo.(indexEnsurer),
		bookRepo.(indexEnsurer),
		revRepo.(indexEnsurer),
		msgRepo.(indexEnsurer),
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: authCache,
	}
	providerService := &provider.DefaultProviderService{
		Repo:  provRepo,
		Users: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookRepo,
		Providers: provRepo,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:   revRepo,
		Bookings:  bookRepo,
		Providers: provRepo,
	}
	messageService := &message.DefaultMessageService{
		Messages:  msgRepo,
		Bookings:  bookRepo,
		Providers: provRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:     userRepo,
		Providers: provRepo,
		Bookings:  bookRepo,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &routes.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: authCache,

		UserHandler:     handlers.NewUserHandler(userService),
		ProviderHandler: handlers.NewProviderHandler(providerService, storageService),
		BookingHandler:  handlers.NewBookingHandler(bookingService),
		ReviewHandler:   handlers.NewReviewHandler(reviewService),
		MessageHandler:  handlers.NewMessageHandler(messageService),
		AdminHandler:    handlers.NewAdminHandler(adminService),
	}
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
