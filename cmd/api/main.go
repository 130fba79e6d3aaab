package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/LaunchPad-AI/launchpad-backend/config"
	"github.com/LaunchPad-AI/launchpad-backend/internal/auth"
	"github.com/LaunchPad-AI/launchpad-backend/internal/bootstrap"
	"github.com/LaunchPad-AI/launchpad-backend/internal/llm"
	"github.com/LaunchPad-AI/launchpad-backend/internal/logging"
	"github.com/LaunchPad-AI/launchpad-backend/internal/metrics"
)

const serviceName = "launchpad-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	app, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		return err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return err
	}

	stores, err := bootstrap.OpenStores(ctx, cfg, app)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	gen, err := llm.NewGeminiClient(ctx, cfg.Gemini, m)
	if err != nil {
		return err
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StoreBackend:   cfg.Store.Backend,
		Generator:      cfg.Gemini,
		Metrics:        m,
		Gatherer:       reg,
		Projects:       stores.Projects,
		Users:          stores.Users,
		Identity:       auth.NewFirebaseIdentity(authClient),
		Verifier:       authClient,
		Gen:            gen,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store.Backend),
			zap.String("model", cfg.Gemini.Model),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
