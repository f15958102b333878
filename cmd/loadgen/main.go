package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"requestsmonitor/internal/loadgen/attack"
	"requestsmonitor/internal/loadgen/burst"
	"requestsmonitor/internal/loadgen/client"
	"requestsmonitor/internal/loadgen/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	httpClient := client.New(cfg.RequestTimeout, cfg.InsecureSkipVerify, max(cfg.BurstSize, 16))

	switch cfg.Mode {
	case "burst":
		if _, err := burst.Run(ctx, httpClient, cfg.BaseURL, cfg.BurstSize, cfg.SlowDelayMs, cfg.RateLimitBypass); err != nil {
			return err
		}
	case "attack":
		err := attack.Run(&attack.Config{
			BaseURL:         cfg.BaseURL,
			Rate:            cfg.Rate,
			Duration:        cfg.Duration,
			FastDelayMs:     cfg.FastDelayMs,
			SlowDelayMs:     cfg.SlowDelayMs,
			SlowRatio:       cfg.SlowRatio,
			FailRatio:       cfg.FailRatio,
			RateLimitBypass: cfg.RateLimitBypass,
			Timeout:         cfg.RequestTimeout,
		}, os.Stdout)
		if err != nil {
			return fmt.Errorf("attack failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown mode: %s", cfg.Mode)
	}

	report, err := client.FetchReport(ctx, httpClient, cfg.BaseURL, cfg.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to fetch monitor report: %w", err)
	}
	fmt.Println()
	fmt.Print(report)
	return nil
}
