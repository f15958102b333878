// Package metrics exposes request monitor counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"requestsmonitor/internal/monitor"
)

const namespace = "requests_monitor"

type SnapshotSource interface {
	Snapshot() monitor.Snapshot
}

// Collector reads a fresh snapshot on every scrape, so the exported values
// always agree with the plain-text report.
type Collector struct {
	source SnapshotSource

	requests    *prometheus.Desc
	slow        *prometheus.Desc
	logEntries  *prometheus.Desc
	logCapacity *prometheus.Desc
	threshold   *prometheus.Desc
	startTime   *prometheus.Desc
}

func NewCollector(source SnapshotSource) *Collector {
	return &Collector{
		source: source,
		requests: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "requests_total"),
			"Total number of monitored requests.", nil, nil),
		slow: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "slow_requests_total"),
			"Number of requests that exceeded the duration threshold.", nil, nil),
		logEntries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "slow_log", "entries"),
			"Slow requests currently retained in memory.", nil, nil),
		logCapacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "slow_log", "capacity"),
			"Maximum number of retained slow requests.", nil, nil),
		threshold: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "duration_threshold_milliseconds"),
			"Duration above which a request is considered slow.", nil, nil),
		startTime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "start_time_seconds"),
			"Unix time the monitor was initialized.", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.requests
	ch <- c.slow
	ch <- c.logEntries
	ch <- c.logCapacity
	ch <- c.threshold
	ch <- c.startTime
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Snapshot()

	ch <- prometheus.MustNewConstMetric(c.requests, prometheus.CounterValue, float64(s.TotalCount))
	ch <- prometheus.MustNewConstMetric(c.slow, prometheus.CounterValue, float64(s.SlowCount))
	ch <- prometheus.MustNewConstMetric(c.logEntries, prometheus.GaugeValue, float64(len(s.Entries)))
	ch <- prometheus.MustNewConstMetric(c.logCapacity, prometheus.GaugeValue, float64(s.Config.LogSize))
	ch <- prometheus.MustNewConstMetric(c.threshold, prometheus.GaugeValue, float64(s.Config.DurationThreshold))
	ch <- prometheus.MustNewConstMetric(c.startTime, prometheus.GaugeValue, float64(s.InitializedAt.Unix()))
}

// NewRegistry returns a registry holding the monitor collector next to the
// Go runtime and process collectors.
func NewRegistry(source SnapshotSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewCollector(source),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
