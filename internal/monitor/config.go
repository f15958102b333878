package monitor

import (
	"strconv"
	"strings"
)

const (
	DefaultDurationThreshold int64 = 1000
	DefaultReportingPath           = "/monitor"
	DefaultLogSize                 = 100
)

// Option keys accepted by ParseConfig.
const (
	OptionDuration  = "duration"
	OptionLogSize   = "logsize"
	OptionReporting = "reporting"
	OptionTrace     = "trace"
)

type Config struct {
	// DurationThreshold is in milliseconds. Requests taking strictly longer are logged.
	DurationThreshold int64
	ReportingPath     string
	LogSize           int
	Trace             bool
}

func DefaultConfig() Config {
	return Config{
		DurationThreshold: DefaultDurationThreshold,
		ReportingPath:     DefaultReportingPath,
		LogSize:           DefaultLogSize,
	}
}

// ParseConfig builds a Config from flat string options. It never fails:
// missing, malformed or negative numbers fall back to their defaults.
func ParseConfig(options map[string]string) Config {
	cfg := DefaultConfig()

	cfg.DurationThreshold = parseNonNegative(options[OptionDuration], DefaultDurationThreshold)
	cfg.LogSize = int(parseNonNegative(options[OptionLogSize], DefaultLogSize))

	if reporting := options[OptionReporting]; reporting != "" {
		cfg.ReportingPath = reporting
	}

	cfg.Trace = strings.EqualFold(strings.TrimSpace(options[OptionTrace]), "true")

	return cfg
}

func parseNonNegative(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || v < 0 {
		return def
	}
	return v
}
