package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aretw0/magazine"
	httpAdapter "github.com/aretw0/magazine/pkg/adapters/http"
	redisAdapter "github.com/aretw0/magazine/pkg/adapters/redis"
	"github.com/aretw0/magazine/pkg/observability"
)

// Serve exposes the selected definition over HTTP until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions, out io.Writer) error {
	logger := createLogger(opts.Debug)
	metrics := observability.NewMetrics()

	extra := []magazine.Option{magazine.WithLifecycleHooks(metrics.Hooks())}
	if opts.RedisAddr != "" {
		cache := redisAdapter.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, redisAdapter.WithTTL(opts.CacheTTL))
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			return fmt.Errorf("redis cache unavailable at %s: %w", opts.RedisAddr, err)
		}
		extra = append(extra, magazine.WithCache(cache))
		logger.Info("verdict cache enabled", "backend", "redis", "addr", opts.RedisAddr, "ttl", opts.CacheTTL)
	}

	engine, err := createEngine(opts.RunOptions, logger, extra...)
	if err != nil {
		return err
	}

	handler, err := httpAdapter.NewHandler(engine,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithVersion(magazine.Version),
		httpAdapter.WithMaxInputSize(opts.MaxInputSize),
		httpAdapter.WithMetrics(metrics.Handler()),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(out, "Starting magazine server on %s", srv.Addr)
		printSystemMessage(out, "Serving definition '%s' from %s", engine.Name, opts.Path)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		printSystemMessage(out, "Shutting down...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "err", err)
			return srv.Close()
		}
		printSystemMessage(out, "Server stopped gracefully")
		return nil
	}
}
