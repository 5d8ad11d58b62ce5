// File: skibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skibook/config"
	"skibook/database"
	bookingRepo "skibook/database/repository/booking"
	sessionRepo "skibook/database/repository/session"
	"skibook/handlers"
	"skibook/middleware"
	"skibook/routes"
	"skibook/services/booking"
	"skibook/services/notification"
	"skibook/services/session"
	"skibook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessRepo := sessionRepo.NewMongoSessionRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	mailService := notification.NewDefaultMailService(notification.MailConfig{
		Host:      config.AppConfig.EmailHost,
		Port:      config.AppConfig.EmailPort,
		Username:  config.AppConfig.EmailUser,
		Password:  config.AppConfig.EmailPass,
		From:      config.AppConfig.EmailFrom,
		AdminAddr: config.AppConfig.AdminEmail,
	})
	sessionService := &session.DefaultSessionService{
		Repo:  sessRepo,
		Cache: cacheClient,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookRepo,
		Sessions: sessRepo,
		Mailer:   mailService,
	}

	// Assemble the handler bundle and register routes.
	hb := &handlers.HandlerBundle{
		Sessions: handlers.NewSessionHandler(sessionService, logger),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
	}
	routes.RegisterRoutes(router, hb)

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
