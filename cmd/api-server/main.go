package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gnaneshwari22/hospital-scheduling/internal/api"
	"github.com/gnaneshwari22/hospital-scheduling/internal/config"
	"github.com/gnaneshwari22/hospital-scheduling/internal/doctor"
	"github.com/gnaneshwari22/hospital-scheduling/internal/patient"
	"github.com/gnaneshwari22/hospital-scheduling/internal/scheduling"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	logger.Info("api-server starting up",
		zap.String("env", cfg.Env),
		zap.String("http_port", cfg.HTTPPort),
	)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Each registry owns its own store; the scheduling core gets the two
	// registries for existence checks only.
	patients := patient.NewService(patient.NewRepository())
	doctors := doctor.NewService(doctor.NewRepository())
	sched := scheduling.NewService(
		scheduling.NewRepository(),
		scheduling.NewSlotIndex(),
		patients,
		doctors,
		logger,
	)

	router := api.NewRouter(api.RouterConfig{
		Patients:   patients,
		Doctors:    doctors,
		Scheduling: sched,
		Logger:     logger,
		Env:        cfg.Env,
		Version:    version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
		logger.Info("shutting down api-server")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "prod" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
