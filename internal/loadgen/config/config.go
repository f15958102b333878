package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Mode               string        `env:"LOADGEN_MODE" envDefault:"attack"`
	Rate               int           `env:"RATE" envDefault:"50"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	FastDelayMs        int           `env:"FAST_DELAY_MS" envDefault:"10"`
	SlowDelayMs        int           `env:"SLOW_DELAY_MS" envDefault:"1500"`
	SlowRatio          float64       `env:"SLOW_RATIO" envDefault:"0.1"`
	FailRatio          float64       `env:"FAIL_RATIO" envDefault:"0"`
	BurstSize          int           `env:"BURST_SIZE" envDefault:"20"`
	ReportPath         string        `env:"REPORT_PATH" envDefault:"/monitor"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
