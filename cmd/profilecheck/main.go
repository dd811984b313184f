package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"profilecheck/internal/api"
	"profilecheck/internal/app"
	"profilecheck/internal/cache"
	"profilecheck/internal/config"
	"profilecheck/internal/fetch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading config failed")
	}

	setupLogging(cfg.Logging)

	store, err := cache.New(cache.Config{
		Path:        cfg.Cache.Path,
		DefaultTTL:  cfg.Cache.DefaultTTL,
		VerifiedTTL: cfg.Cache.VerifiedTTL,
		NegativeTTL: cfg.Cache.NegativeTTL,
		MaxEntries:  cfg.Cache.MaxEntries,
	}, nil)
	if err != nil {
		logrus.WithError(err).Fatal("opening profile cache failed")
	}

	client := fetch.NewClient(fetch.ClientConfig{
		BaseURL:           cfg.Upstream.BaseURL,
		BearerToken:       cfg.Upstream.BearerToken,
		CSRFToken:         cfg.Upstream.CSRFToken,
		UserQueryID:       cfg.Upstream.UserQueryID,
		AboutQueryID:      cfg.Upstream.AboutQueryID,
		Timeout:           cfg.Upstream.Timeout,
		PauseBetweenCalls: cfg.Upstream.PauseBetweenCalls,
	}, nil)

	coord := fetch.NewCoordinator(fetch.Config{
		MinDelay:          cfg.RateLimit.MinDelay,
		MaxDelay:          cfg.RateLimit.MaxDelay,
		BackoffMultiplier: cfg.RateLimit.BackoffMultiplier,
		MaxConcurrent:     cfg.RateLimit.MaxConcurrent,
	}, store, client, nil)

	settings, err := app.NewSettingsStore(cfg.Settings.Path, nil)
	if err != nil {
		logrus.WithError(err).Fatal("opening settings store failed")
	}

	svc := app.NewService(store, coord, settings, nil)
	router := api.NewRouter(cfg, svc)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("server shutdown incomplete")
	}
	coord.Close()
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
