package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adityarama/fleetops/internal/pkg/database"
	"github.com/adityarama/fleetops/internal/pkg/logger"
)

// Status is the health of a single dependency
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Checker probes one dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// Service aggregates dependency checkers behind /health endpoints
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: map[string]Checker{}}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Report probes every registered dependency with a short timeout each
func (s *Service) Report(ctx context.Context) (map[string]Status, bool) {
	report := make(map[string]Status, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			logger.Warn("dependency check failed",
				logger.String("dependency", name),
				logger.Err(err))
			report[name] = StatusDown
			healthy = false
			continue
		}
		report[name] = StatusUp
	}

	return report, healthy
}

// RegisterEndpoints mounts /health (liveness) and /health/ready (readiness,
// probing all registered dependencies) on the server.
func (s *Service) RegisterEndpoints(e *echo.Echo, appName string) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service": appName,
			"status":  "ok",
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		report, healthy := s.Report(c.Request().Context())
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, map[string]interface{}{
			"service":      appName,
			"dependencies": report,
		})
	})
}

// NewPostgresChecker probes the database connection pool
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker probes the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetClient().Ping(ctx).Err()
	})
}
