package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"requestsmonitor/internal/monitor"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		options  map[string]string
		expected monitor.Config
	}{
		{
			name:     "nil options yield defaults",
			options:  nil,
			expected: monitor.DefaultConfig(),
		},
		{
			name: "all options set",
			options: map[string]string{
				"duration":  "250",
				"logsize":   "10",
				"reporting": "/status",
				"trace":     "true",
			},
			expected: monitor.Config{
				DurationThreshold: 250,
				ReportingPath:     "/status",
				LogSize:           10,
				Trace:             true,
			},
		},
		{
			name:     "non-numeric duration falls back",
			options:  map[string]string{"duration": "fast"},
			expected: monitor.DefaultConfig(),
		},
		{
			name:     "negative duration falls back",
			options:  map[string]string{"duration": "-5"},
			expected: monitor.DefaultConfig(),
		},
		{
			name:     "non-numeric logsize falls back",
			options:  map[string]string{"logsize": "1e3"},
			expected: monitor.DefaultConfig(),
		},
		{
			name:    "zero values are accepted",
			options: map[string]string{"duration": "0", "logsize": "0"},
			expected: monitor.Config{
				DurationThreshold: 0,
				ReportingPath:     "/monitor",
				LogSize:           0,
			},
		},
		{
			name:     "empty reporting keeps default",
			options:  map[string]string{"reporting": ""},
			expected: monitor.DefaultConfig(),
		},
		{
			name:    "trace is case-insensitive",
			options: map[string]string{"trace": "TrUe"},
			expected: monitor.Config{
				DurationThreshold: 1000,
				ReportingPath:     "/monitor",
				LogSize:           100,
				Trace:             true,
			},
		},
		{
			name:     "trace other values disable",
			options:  map[string]string{"trace": "yes"},
			expected: monitor.DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monitor.ParseConfig(tt.options))
		})
	}
}
