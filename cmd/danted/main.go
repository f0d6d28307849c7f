package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"dante/internal/logging"
	"dante/internal/server/assistant"
	"dante/internal/server/auth"
	"dante/internal/server/config"
	"dante/internal/server/rest"
	"dante/internal/server/storage/sqlite"
	"dante/internal/server/uploads"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("danted: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	log, err := logging.NewServer(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var model assistant.Assistant = assistant.Placeholder{}
	if cfg.GeminiKey != "" {
		g, err := assistant.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		model = g
		log.Info("assistant enabled", zap.String("model", cfg.GeminiModel))
	} else {
		log.Warn("DANTE_GEMINI_API_KEY not set, assistant answers with placeholders")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e := rest.New(rest.Deps{
		Store:      store,
		Tokens:     auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		Uploads:    uploads.New(cfg.UploadDir),
		Assistant:  assistant.New(store, model, log),
		Log:        log,
		Registry:   reg,
		LoginRate:  rate.Limit(cfg.LoginRate),
		LoginBurst: cfg.LoginBurst,
		MaxBody:    strconv.FormatInt(cfg.MaxUpload, 10),
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", server.Addr), zap.String("db", cfg.DBPath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
