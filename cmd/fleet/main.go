package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/adityarama/fleetops/internal/pkg/config"
	"github.com/adityarama/fleetops/internal/pkg/database"
	"github.com/adityarama/fleetops/internal/pkg/health"
	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/middleware"
	"github.com/adityarama/fleetops/internal/pkg/nsq"
	routehttp "github.com/adityarama/fleetops/services/routes/handler/http"
	routerepo "github.com/adityarama/fleetops/services/routes/repository"
	routeuc "github.com/adityarama/fleetops/services/routes/usecase"
	stophttp "github.com/adityarama/fleetops/services/stops/handler/http"
	stoprepo "github.com/adityarama/fleetops/services/stops/repository"
	stopuc "github.com/adityarama/fleetops/services/stops/usecase"
	"github.com/adityarama/fleetops/services/trips/gateway"
	triphttp "github.com/adityarama/fleetops/services/trips/handler/http"
	triprepo "github.com/adityarama/fleetops/services/trips/repository"
	tripuc "github.com/adityarama/fleetops/services/trips/usecase"
)

func main() {
	configPath := "config/fleet.yaml"
	if p := os.Getenv("FLEETOPS_CONFIG"); p != "" {
		configPath = p
	}

	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(configs.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for lifecycle events
	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Initialize repositories
	stopRepo := stoprepo.NewStopRepository(db)
	routeRepo := routerepo.NewRouteRepository(db)
	tripRepo := triprepo.NewTripRepository(db)

	// Initialize gateway
	tripGW := gateway.NewTripGW(producer)

	// Initialize usecases
	stopUC := stopuc.NewStopUC(configs, stopRepo, redisClient)
	routeUC := routeuc.NewRouteUC(configs, routeRepo, stopRepo)
	tripUC := tripuc.NewTripUC(configs, tripRepo, tripGW)

	// Initialize handlers
	stopHandler := stophttp.NewStopHandler(stopUC)
	routeHandler := routehttp.NewRouteHandler(routeUC)
	tripHandler := triphttp.NewTripHandler(tripUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.RegisterEndpoints(e, configs.App.Name)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	stopHandler.RegisterRoutes(api)
	routeHandler.RegisterRoutes(api)
	tripHandler.RegisterRoutes(api)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}
