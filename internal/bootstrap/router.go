package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	httpapi "github.com/LaunchPad-AI/launchpad-backend/internal/api/http"
	"github.com/LaunchPad-AI/launchpad-backend/internal/api/http/middleware"
	assistanthttp "github.com/LaunchPad-AI/launchpad-backend/internal/assistant/http"
	assistantsvc "github.com/LaunchPad-AI/launchpad-backend/internal/assistant/service"
	authhttp "github.com/LaunchPad-AI/launchpad-backend/internal/auth/http"
	authmw "github.com/LaunchPad-AI/launchpad-backend/internal/auth/middleware"
	authrepo "github.com/LaunchPad-AI/launchpad-backend/internal/auth/repository"
	authsvc "github.com/LaunchPad-AI/launchpad-backend/internal/auth/service"
	"github.com/LaunchPad-AI/launchpad-backend/internal/llm"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
	projecthttp "github.com/LaunchPad-AI/launchpad-backend/internal/projects/http"
	projectrepo "github.com/LaunchPad-AI/launchpad-backend/internal/projects/repository"
	projectsvc "github.com/LaunchPad-AI/launchpad-backend/internal/projects/service"
)

// RouterDeps carries every long-lived client the routes need. Nothing is
// created from globals.
type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	StoreBackend   string
	Generator      config.GeminiConfig

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Projects projectrepo.ProjectStore
	Users    authrepo.UserStore
	Identity authsvc.IdentityProvider
	Verifier authmw.TokenVerifier
	Gen      llm.Generator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Metrics))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	projects := projectsvc.NewProjectService(dep.Projects, dep.Users)
	aggregator := projectsvc.NewAggregator(dep.Projects, dep.Metrics)
	assistant := assistantsvc.NewAssistantService(dep.Gen, aggregator, projects)

	healthHandler := httpapi.NewHealthHandler(httpapi.HealthConfig{
		Service:      dep.ServiceName,
		Version:      dep.Version,
		StoreBackend: dep.StoreBackend,
		Model:        dep.Generator.Model,
		RateLimit:    dep.Generator.RateLimit,
		Burst:        dep.Generator.Burst,
	}, projects)
	healthHandler.RegisterRoutes(r)

	if dep.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Gatherer, promhttp.HandlerOpts{})))
	}

	userHandler := authhttp.New(authsvc.NewAuthService(dep.Identity, dep.Users))
	userHandler.RegisterPublic(r.Group("/user"))

	protected := r.Group("")
	protected.Use(authmw.FirebaseAuthMiddleware(dep.Verifier))

	userHandler.Register(protected.Group("/user"))

	projectHandler := projecthttp.New(projects)
	projectHandler.Register(protected.Group("/project"))
	projectHandler.RegisterDashboard(protected.Group("/dashboard"))

	assistanthttp.New(assistant).Register(protected.Group("/assistant"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
