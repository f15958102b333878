package attack

import (
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL         string
	Rate            int
	Duration        time.Duration
	FastDelayMs     int
	SlowDelayMs     int
	SlowRatio       float64
	FailRatio       float64
	RateLimitBypass string
	Timeout         time.Duration
}

// Run attacks the delay endpoint at a constant rate and writes vegeta's text
// report to out.
func Run(cfg *Config, out io.Writer) error {
	if cfg.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", cfg.Rate)
	}

	targeter := MixedTargeter(cfg.BaseURL, cfg.FastDelayMs, cfg.SlowDelayMs, cfg.SlowRatio, cfg.FailRatio, cfg.RateLimitBypass)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(1000),
		vegeta.Timeout(cfg.Timeout),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
	)

	fmt.Fprintf(out, "Starting attack: rate=%d/s duration=%s slow_ratio=%.2f\n", cfg.Rate, cfg.Duration, cfg.SlowRatio)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, "delay") {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(out)
}
