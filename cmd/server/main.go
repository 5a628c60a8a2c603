package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trifectawealth/portal/internal/clock"
	"github.com/trifectawealth/portal/internal/config"
	"github.com/trifectawealth/portal/internal/fixtures"
	"github.com/trifectawealth/portal/internal/handlers"
	"github.com/trifectawealth/portal/internal/logging"
	"github.com/trifectawealth/portal/internal/middleware"
	"github.com/trifectawealth/portal/internal/routes"
	"github.com/trifectawealth/portal/internal/services/actionitems"
	"github.com/trifectawealth/portal/internal/services/alerts"
	"github.com/trifectawealth/portal/internal/services/appointments"
	"github.com/trifectawealth/portal/internal/services/clients"
	"github.com/trifectawealth/portal/internal/services/documents"
	"github.com/trifectawealth/portal/internal/services/messages"
	"github.com/trifectawealth/portal/internal/services/resources"
	"github.com/trifectawealth/portal/internal/services/trifecta"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load seed data
	alertSeed, err := fixtures.Alerts()
	if err != nil {
		logger.Fatal("loading alert fixtures", zap.Error(err))
	}
	apptSeed, err := fixtures.Appointments()
	if err != nil {
		logger.Fatal("loading appointment fixtures", zap.Error(err))
	}
	clientSeed, err := fixtures.Clients()
	if err != nil {
		logger.Fatal("loading client fixtures", zap.Error(err))
	}
	docSeed, err := fixtures.Documents()
	if err != nil {
		logger.Fatal("loading document fixtures", zap.Error(err))
	}
	msgSeed, err := fixtures.Messages()
	if err != nil {
		logger.Fatal("loading message fixtures", zap.Error(err))
	}
	itemSeed, err := fixtures.ActionItems()
	if err != nil {
		logger.Fatal("loading action-item fixtures", zap.Error(err))
	}
	pillarSeed, err := fixtures.Pillars()
	if err != nil {
		logger.Fatal("loading pillar fixtures", zap.Error(err))
	}
	resourceSeed, err := fixtures.Resources()
	if err != nil {
		logger.Fatal("loading resource fixtures", zap.Error(err))
	}

	// Initialize services, all sharing the system clock
	clk := clock.System()
	alertService := alerts.NewService(alertSeed, clk)
	apptService := appointments.NewService(apptSeed, clk)
	clientService := clients.NewService(clientSeed, clk)
	docService := documents.NewService(docSeed, clk)
	msgService := messages.NewService(msgSeed, clk)
	itemService := actionitems.NewService(itemSeed, clk)
	trifectaService := trifecta.NewService(pillarSeed)
	resourceService := resources.NewService(resourceSeed, clk)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Setup routes
	routes.Setup(router, routes.Handlers{
		Alerts:       handlers.NewAlertHandler(alertService),
		Appointments: handlers.NewAppointmentHandler(apptService),
		Clients:      handlers.NewClientHandler(clientService),
		Documents:    handlers.NewDocumentHandler(docService),
		Messages:     handlers.NewMessageHandler(msgService),
		ActionItems:  handlers.NewActionItemHandler(itemService),
		Trifecta:     handlers.NewTrifectaHandler(trifectaService),
		Planning:     handlers.NewPlanningHandler(),
		Resources:    handlers.NewResourceHandler(resourceService),
	}, rateLimiter)

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
