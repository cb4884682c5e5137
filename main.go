package main

import (
	"ImageTagger/config/environment"
	"ImageTagger/routes"
	"ImageTagger/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func logStartup(log *slog.Logger, cfg environment.Config) {
	log.Info("Servidor corriendo", "addr", "http://localhost:"+strconv.Itoa(cfg.Port))
}

func run() error {
	dotEnvErr := environment.LoadDotEnv()

	cfg, err := environment.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)
	if dotEnvErr != nil {
		log.Info("No .env file found, using process environment")
	}
	if cfg.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, /generate will fail at the provider")
	}

	gin.SetMode(cfg.GinMode)
	router := routes.NewRouter(log, cfg, services.NewOpenAIService(cfg))

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logStartup(log, cfg)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
