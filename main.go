package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"requestsmonitor/internal/config"
	"requestsmonitor/internal/handler"
	"requestsmonitor/internal/metrics"
	"requestsmonitor/internal/middleware"
	"requestsmonitor/internal/monitor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clock := clockwork.NewRealClock()
	mon := monitor.New(
		monitor.ParseConfig(cfg.Monitor.Options()),
		monitor.WithClock(clock),
		monitor.WithLogger(logger.With(slog.String("component", "monitor"))),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(&cfg.RateLimit, mon, logger))
	}
	e.Use(middleware.Monitor(mon))

	h := handler.New(logger, clock, time.Duration(cfg.Demo.MaxDelayMs)*time.Millisecond)
	h.Register(e)

	if cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(metrics.Handler(metrics.NewRegistry(mon))))
		logger.Info("metrics endpoint enabled", slog.String("path", cfg.Metrics.Path))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.String("reporting_path", mon.Config().ReportingPath),
		slog.Int64("duration_threshold_ms", mon.Config().DurationThreshold),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
