package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthConfig describes what /health reports besides liveness.
type HealthConfig struct {
	Service      string
	Version      string
	StoreBackend string
	// generator settings
	Model     string
	RateLimit float64
	Burst     int
}

type StoreHealth struct {
	Backend string `json:"backend,omitempty"`
	Status  string `json:"status"`
}

type GeneratorHealth struct {
	Model     string  `json:"model"`
	RateLimit float64 `json:"rateLimit"`
	Burst     int     `json:"burst"`
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Service   string           `json:"service"`
	Version   string           `json:"version"`
	Store     StoreHealth      `json:"store"`
	Generator *GeneratorHealth `json:"generator,omitempty"`
}

type HealthHandler struct {
	cfg   HealthConfig
	store Pinger
}

func NewHealthHandler(cfg HealthConfig, store Pinger) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: store}
}

// HealthCheck always answers 200; an unreachable store only marks the
// service degraded.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Service:   h.cfg.Service,
		Version:   h.cfg.Version,
		Store:     StoreHealth{Backend: h.cfg.StoreBackend, Status: "disabled"},
	}

	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			resp.Store.Status = "down"
			resp.Status = statusDegraded
		} else {
			resp.Store.Status = "up"
		}
	}

	if h.cfg.Model != "" {
		resp.Generator = &GeneratorHealth{
			Model:     h.cfg.Model,
			RateLimit: h.cfg.RateLimit,
			Burst:     h.cfg.Burst,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
