package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"requestsmonitor/internal/monitor"
)

type Config struct {
	Server    ServerConfig
	Monitor   MonitorConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Demo      DemoConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

// MonitorConfig keeps the raw option strings so that malformed values fall
// back to monitor defaults instead of failing startup.
type MonitorConfig struct {
	Duration  string `env:"MONITOR_DURATION"`
	LogSize   string `env:"MONITOR_LOGSIZE"`
	Reporting string `env:"MONITOR_REPORTING"`
	Trace     string `env:"MONITOR_TRACE"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

type DemoConfig struct {
	MaxDelayMs int `env:"DEMO_MAX_DELAY_MS" envDefault:"30000"`
}

// Options returns the monitor options that were actually set.
func (c MonitorConfig) Options() map[string]string {
	opts := make(map[string]string, 4)
	for key, value := range map[string]string{
		monitor.OptionDuration:  c.Duration,
		monitor.OptionLogSize:   c.LogSize,
		monitor.OptionReporting: c.Reporting,
		monitor.OptionTrace:     c.Trace,
	} {
		if value != "" {
			opts[key] = value
		}
	}
	return opts
}

// Load reads an optional .env file from the working directory, then parses
// the environment. Variables already set take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
