// Package browserservice wires configuration, logging, the backend gateway,
// and the HTTP server into a running memory browser.
package browserservice

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/liakhandrii/agentcore-memory-browser/internal/api"
	"github.com/liakhandrii/agentcore-memory-browser/internal/config"
	"github.com/liakhandrii/agentcore-memory-browser/internal/gateway"
	"github.com/liakhandrii/agentcore-memory-browser/internal/logger"
	"github.com/liakhandrii/agentcore-memory-browser/internal/session"
)

// Run starts the memory browser HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("memory-browser")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	opts := []logger.Option{logger.WithLevel(cfg.LogLevel)}
	if cfg.ConsoleLogs {
		opts = append(opts, logger.WithConsole())
	}
	log = logger.New("memory-browser", opts...)

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("backend_url", cfg.BackendURL).
		Int("max_results", cfg.MaxResults).
		Msg("memory browser starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw := gateway.New(cfg.BackendURL,
		gateway.WithTimeout(cfg.RequestTimeout),
		gateway.WithLogger(log),
	)

	// Fail fast when the backend is unreachable at startup. Workflow
	// requests themselves are never retried; this probe only bounds how
	// long startup waits for the backend to come up.
	if cfg.StartupProbe {
		if err := waitUntilReachable(ctx, gw, cfg.StartupProbeTimeout); err != nil {
			log.Error().Err(err).Msg("backend unreachable")
			return err
		}
		log.Info().Msg("backend reachable")
	}

	handler := api.NewHandler(gw, session.New(), log, cfg.MaxResults)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func waitUntilReachable(ctx context.Context, gw *gateway.Client, timeout time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = timeout
	return backoff.Retry(func() error {
		return gw.Ping(ctx)
	}, backoff.WithContext(bo, ctx))
}
