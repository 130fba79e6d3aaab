package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthRouter(cfg HealthConfig, store Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler(cfg, store).RegisterRoutes(router)
	return router
}

func getHealth(t *testing.T, r *gin.Engine, path string) HealthResponse {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func TestHealthCheck(t *testing.T) {
	cfg := HealthConfig{Service: "test-service", Version: "1.0.0", StoreBackend: "redis"}

	tests := []struct {
		name       string
		store      Pinger
		wantStore  string
		wantStatus string
	}{
		{"no store", nil, "disabled", "healthy"},
		{"store up", pingerFunc(func(context.Context) error { return nil }), "up", "healthy"},
		{"store down", pingerFunc(func(context.Context) error { return errors.New("unreachable") }), "down", "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/health", "/healthz"} {
				response := getHealth(t, healthRouter(cfg, tt.store), path)
				assert.Equal(t, tt.wantStatus, response.Status)
				assert.Equal(t, "test-service", response.Service)
				assert.Equal(t, "1.0.0", response.Version)
				assert.Equal(t, "redis", response.Store.Backend)
				assert.Equal(t, tt.wantStore, response.Store.Status)
				assert.Nil(t, response.Generator)
			}
		})
	}
}

func TestHealthCheckReportsGenerator(t *testing.T) {
	cfg := HealthConfig{
		Service:      "test-service",
		Version:      "1.0.0",
		StoreBackend: "firestore",
		Model:        "gemini-2.0-flash-lite",
		RateLimit:    5,
		Burst:        10,
	}

	response := getHealth(t, healthRouter(cfg, nil), "/health")
	require.NotNil(t, response.Generator)
	assert.Equal(t, "gemini-2.0-flash-lite", response.Generator.Model)
	assert.Equal(t, 5.0, response.Generator.RateLimit)
	assert.Equal(t, 10, response.Generator.Burst)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	healthRouter(HealthConfig{}, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
