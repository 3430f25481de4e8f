package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "thermostat_dashboard/docs"
	"thermostat_dashboard/internal/client"
	"thermostat_dashboard/internal/config"
	"thermostat_dashboard/internal/handlers"
	"thermostat_dashboard/internal/logger"
	"thermostat_dashboard/internal/repository"
	"thermostat_dashboard/internal/repository/db"
	"thermostat_dashboard/internal/server"
	"thermostat_dashboard/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title                       Thermostat Dashboard Agent
// @version                     1.0
// @description                 Keeps a smart-thermostat dashboard in sync with the backend: periodic refresh, due schedules, debounced target changes and a live state stream.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	backend := client.New(client.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Breaker: client.BreakerSettings{
			MaxRequests:         cfg.Backend.Breaker.MaxRequests,
			Interval:            cfg.Backend.Breaker.Interval,
			Timeout:             cfg.Backend.Breaker.Timeout,
			ConsecutiveFailures: cfg.Backend.Breaker.ConsecutiveFailures,
		},
	}, repos.Session)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services := service.NewService(ctx, repos, backend, service.Config{
		Dashboard: service.DashboardConfig{
			RefreshInterval: cfg.Dashboard.RefreshInterval,
			Debounce:        cfg.Dashboard.Debounce,
			MinTarget:       cfg.Dashboard.MinTarget,
			MaxTarget:       cfg.Dashboard.MaxTarget,
		},
		Auth: service.AuthConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	}, service.RealClock(), log)

	resumeSession(ctx, services, log)

	apiHandler := handlers.NewHandler(services, log)
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, services, log)
}

// resumeSession restarts the dashboard of a session stored by a previous run.
func resumeSession(ctx context.Context, services *service.Service, log *logger.Logger) {
	resumed, err := services.Auth.Resume(ctx)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		log.Infow("stored session expired; log in again")
	case err != nil:
		log.Errorw("session_resume_failed", "err", err)
	case resumed:
		log.Infow("resumed stored session")
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// a pending target update is dropped here
	services.Dashboards.Stop()
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
