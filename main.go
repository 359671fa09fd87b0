package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multisport/config"
	"multisport/cron"
	"multisport/database"
	activityRepoPkg "multisport/database/repository/activity"
	reservationRepoPkg "multisport/database/repository/reservation"
	roomRepoPkg "multisport/database/repository/room"
	sessionRepoPkg "multisport/database/repository/session"
	"multisport/handlers"
	"multisport/middleware"
	"multisport/routes"
	"multisport/services/booking"
	"multisport/services/dialog"
	"multisport/services/intelligence"
	"multisport/services/navigation"
	"multisport/services/nlu"
	"multisport/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient, err := utils.NewSessionCacheClient(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to session cache: %v", err)
	}
	cron.InitSessionCacheMonitor(cacheClient, 10*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo(db)
	activityRepo := activityRepoPkg.NewMongoActivityRepo(db)
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo(db)
	sessionStore := sessionRepoPkg.NewRedisSessionStore(
		cacheClient, time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute)

	// services.
	availability := &booking.DefaultAvailabilityResolver{
		RoomRepo:        roomRepo,
		ActivityRepo:    activityRepo,
		ReservationRepo: reservationRepo,
	}
	roomResolver := &booking.DefaultRoomResolver{RoomRepo: roomRepo}

	var chatSvc intelligence.ChatService
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		svc, err := intelligence.NewGeminiChatService(context.Background(), key)
		if err != nil {
			logger.Sugar().Warnf("main: chat service unavailable, using rule fallbacks: %v", err)
		} else {
			chatSvc = svc
		}
	}

	indoorMap := navigation.NewIndoorMap()
	dialogManager := &dialog.DefaultManager{
		Sessions:     sessionStore,
		Availability: availability,
		Rooms:        roomResolver,
		Reservations: reservationRepo,
		Activities:   activityRepo,
		Nav:          indoorMap,
		Chat:         chatSvc,
		SystemPrompt: intelligence.DefaultSystemPrompt,
		Hours: dialog.OpeningHours{
			WeekdayOpen:  config.AppConfig.WeekdayOpen,
			WeekdayClose: config.AppConfig.WeekdayClose,
			WeekendOpen:  config.AppConfig.WeekendOpen,
			WeekendClose: config.AppConfig.WeekendClose,
		},
		HistoryMax: config.AppConfig.HistoryMaxMessages,
	}

	dialogHandler := handlers.NewDialogHandler(dialogManager, nlu.NewKeywordMatcher(), sessionStore, indoorMap)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateSessionHandler: dialogHandler.CreateSessionHandler,
		DialogHandler:        dialogHandler.DialogTurnHandler,
		NavigationHandler:    dialogHandler.NavigationHandler,
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
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
