package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Report_AllUp(t *testing.T) {
	s := NewService()
	s.AddChecker("postgres", CheckerFunc(func(context.Context) error { return nil }))
	s.AddChecker("redis", CheckerFunc(func(context.Context) error { return nil }))

	report, healthy := s.Report(context.Background())

	assert.True(t, healthy)
	assert.Equal(t, StatusUp, report["postgres"])
	assert.Equal(t, StatusUp, report["redis"])
}

func TestService_Report_OneDown(t *testing.T) {
	s := NewService()
	s.AddChecker("postgres", CheckerFunc(func(context.Context) error { return nil }))
	s.AddChecker("redis", CheckerFunc(func(context.Context) error { return errors.New("connection refused") }))

	report, healthy := s.Report(context.Background())

	assert.False(t, healthy)
	assert.Equal(t, StatusUp, report["postgres"])
	assert.Equal(t, StatusDown, report["redis"])
}

func TestService_ReadyEndpoint(t *testing.T) {
	s := NewService()
	s.AddChecker("redis", CheckerFunc(func(context.Context) error { return errors.New("down") }))

	e := echo.New()
	s.RegisterEndpoints(e, "fleetops")

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fleetops", body["service"])
}

func TestService_LivenessEndpoint(t *testing.T) {
	s := NewService()

	e := echo.New()
	s.RegisterEndpoints(e, "fleetops")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
