// File: brightsmile/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightsmile/config"
	"brightsmile/database"
	appointmentRepo "brightsmile/database/repository/appointment"
	"brightsmile/handlers"
	"brightsmile/middleware"
	"brightsmile/routes"
	"brightsmile/services/booking"
	"brightsmile/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	warnUnconfigured(logger)

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	bookingService := booking.NewDefaultBookingService(
		booking.NewDatabaseStore(apptRepo),
		booking.NewSheetStore(),
		booking.NewEmailNotifier(),
	)

	webhookHandler := handlers.NewWebhookHandler(bookingService, logger)
	appointmentsHandler := handlers.NewAppointmentsHandler(apptRepo)

	routes.RegisterRoutes(router, webhookHandler, appointmentsHandler)

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

// warnUnconfigured logs one line per disabled collaborator. Each backend is
// independently optional; a missing one degrades only itself.
func warnUnconfigured(logger *zap.Logger) {
	cfg := config.AppConfig
	if cfg.DatabaseURL == "" {
		logger.Sugar().Warnf("MongoDB is not configured. Set DATABASE_URL to enable database persistence.")
	}
	if cfg.GoogleSheetID == "" {
		logger.Sugar().Warnf("Google Sheets is not configured. Set GOOGLE_SHEET_ID to enable sheet persistence.")
	}
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Sugar().Warnf("SMTP is not configured. Set SMTP_USER and SMTP_PASS to enable confirmation emails.")
	}
}
