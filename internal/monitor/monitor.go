// Package monitor times HTTP requests, keeps a bounded history of the slow
// ones and renders a plain-text status report on a reserved path prefix.
package monitor

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Request describes an inbound request independently of the host framework.
type Request struct {
	// Path is matched against the reporting prefix.
	Path string
	// URL is scheme, host and path, without the query string.
	URL   string
	Query string
}

type Snapshot struct {
	Config        Config
	InitializedAt time.Time
	TotalCount    uint64
	SlowCount     uint64
	Entries       []LogEntry
}

type Option func(*Monitor)

func WithClock(clock clockwork.Clock) Option {
	return func(m *Monitor) {
		m.clock = clock
	}
}

// WithLogger sets the sink for trace lines. Nothing is written unless
// tracing is enabled in the Config.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

type Monitor struct {
	cfg           Config
	clock         clockwork.Clock
	logger        *slog.Logger
	initializedAt time.Time

	total atomic.Uint64

	mu   sync.Mutex
	slow uint64
	log  *slowLog
}

func New(cfg Config, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:    cfg,
		clock:  clockwork.NewRealClock(),
		logger: slog.New(slog.DiscardHandler),
		log:    newSlowLog(cfg.LogSize),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializedAt = m.clock.Now()

	m.trace("monitor initialized",
		slog.Int64("duration_threshold_ms", cfg.DurationThreshold),
		slog.String("reporting_path", cfg.ReportingPath),
		slog.Int("log_size", cfg.LogSize))

	return m
}

func (m *Monitor) Config() Config {
	return m.cfg
}

// IsReportRequest reports whether path starts with the reporting prefix.
func (m *Monitor) IsReportRequest(path string) bool {
	return strings.HasPrefix(path, m.cfg.ReportingPath)
}

// Intercept either writes the status report to w, or times next and records
// it when it runs longer than the threshold. The error returned by next, or a
// panic raised by it, reaches the caller unchanged.
func (m *Monitor) Intercept(w http.ResponseWriter, req Request, next func() error) error {
	m.trace("request received", slog.String("url", req.URL), slog.String("path", req.Path))

	if m.IsReportRequest(req.Path) {
		return m.WriteReport(w)
	}

	m.total.Add(1)
	start := m.clock.Now()
	defer func() {
		elapsed := m.clock.Since(start).Milliseconds()
		if elapsed > m.cfg.DurationThreshold {
			m.record(req, start, elapsed)
		}
	}()

	return next()
}

func (m *Monitor) record(req Request, start time.Time, elapsed int64) {
	m.mu.Lock()
	m.slow++
	entry := LogEntry{
		StartedAt:     start,
		ElapsedMillis: elapsed,
		URL:           req.URL,
		Query:         req.Query,
		SlowCount:     m.slow,
		TotalCount:    m.total.Load(),
	}
	m.log.push(entry)
	m.mu.Unlock()

	m.trace("slow request logged", slog.String("line", formatEntry(entry)))
}

// Snapshot returns a consistent copy of the counters and the slow log.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Config:        m.cfg,
		InitializedAt: m.initializedAt,
		SlowCount:     m.slow,
		TotalCount:    m.total.Load(),
		Entries:       m.log.snapshot(),
	}
}

func (m *Monitor) trace(msg string, attrs ...slog.Attr) {
	if !m.cfg.Trace {
		return
	}
	m.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}
