package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishtracker/internal/config"
	"github.com/mamadbah2/fishtracker/internal/metrics"
	"github.com/mamadbah2/fishtracker/internal/scheduler"
	"github.com/mamadbah2/fishtracker/internal/server/handlers"
	"github.com/mamadbah2/fishtracker/internal/server/router"
	conditionssvc "github.com/mamadbah2/fishtracker/internal/service/conditions"
	recommendationsvc "github.com/mamadbah2/fishtracker/internal/service/recommendation"
	"github.com/mamadbah2/fishtracker/internal/service/triplog"
	"github.com/mamadbah2/fishtracker/pkg/clients/openmeteo"
	"github.com/mamadbah2/fishtracker/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	m := metrics.New()
	sessions := triplog.NewSessionStore(cfg.Sessions.TTL)

	weatherClient := openmeteo.NewClient(cfg.Weather)
	conditionsSvc := conditionssvc.NewService(weatherClient, m, logger.Named(baseLogger, "svc.conditions"))
	recommendationSvc := recommendationsvc.NewService(conditionsSvc, m, logger.Named(baseLogger, "svc.recommendation"))

	tripHandler := handlers.NewTripHandler(sessions, m, cfg.Location(), logger.Named(baseLogger, "handlers.trips"))
	conditionsHandler := handlers.NewConditionsHandler(conditionsSvc, recommendationSvc, sessions, logger.Named(baseLogger, "handlers.conditions"))

	engine := router.New(router.Deps{
		Trips:      tripHandler,
		Conditions: conditionsHandler,
		Metrics:    m.Handler(),
		Observer:   m,
		SessionTTL: cfg.Sessions.TTL,
	}, logger.Named(baseLogger, "router"))

	sched := scheduler.NewScheduler(cfg.Digest, cfg.Location(), conditionsSvc, sessions, logger.Named(baseLogger, "scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Weather.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
