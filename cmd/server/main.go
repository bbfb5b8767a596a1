package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/aaprotein/farmdesk/internal/config"
	"github.com/aaprotein/farmdesk/internal/repository/mongodb"
	"github.com/aaprotein/farmdesk/internal/scheduler"
	"github.com/aaprotein/farmdesk/internal/server/handlers"
	"github.com/aaprotein/farmdesk/internal/server/router"
	metricssvc "github.com/aaprotein/farmdesk/internal/service/metrics"
	"github.com/aaprotein/farmdesk/internal/store"
	"github.com/aaprotein/farmdesk/pkg/clients/notify"
	"github.com/aaprotein/farmdesk/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		baseLogger.Fatal("invalid timezone", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
	}
	clock := func() time.Time { return time.Now().In(location) }

	dataStore := store.New(baseLogger.Named("store"), store.WithClock(clock))
	dataStore.Seed()

	engine := metricssvc.NewEngine(dataStore, cfg.Finance.OpeningBalance, baseLogger.Named("svc.metrics"), metricssvc.WithClock(clock))

	// The summary archive is an optional outbound sink; live state is always
	// rebuilt from the seed on restart.
	var archiver mongodb.Archiver
	if cfg.Archive.MongoURI != "" {
		mongoArchive, err := mongodb.NewMongoDBArchive(context.Background(), cfg.Archive.MongoURI, cfg.Archive.MongoDBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb archive", zap.Error(err))
		}
		defer func() {
			if err := mongoArchive.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archiver = mongoArchive
		baseLogger.Info("daily summary archive enabled")
	} else {
		baseLogger.Warn("MONGODB_URI missing, daily summary archive disabled")
	}

	var notifier notify.Client
	if cfg.Alerts.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Alerts.WebhookURL)
		baseLogger.Info("alert webhook notifier enabled")
	} else {
		baseLogger.Warn("ALERT_WEBHOOK_URL missing, notifications disabled")
	}

	httpHandler := handlers.New(dataStore, engine, baseLogger.Named("handlers"))
	ginEngine := router.New(httpHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, engine, archiver, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      ginEngine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
