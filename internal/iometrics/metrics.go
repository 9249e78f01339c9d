// Package iometrics collects Prometheus metrics of import and LinkOut
// runs. There is no metrics server, a run writes its registry to a file
// in the text format understood by node_exporter's textfile collector.
package iometrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ncbitax"

// Result labels of processed records.
const (
	Imported = "imported"
	Rejected = "rejected"
	Failed   = "failed"
)

// Metrics keeps collectors of one run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	reg *prometheus.Registry

	records         *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	links           *prometheus.CounterVec
	matches         prometheus.Gauge
}

// New creates metrics registered in their own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,

		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Taxonomy records processed by result",
		}, []string{"result"}),

		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eutils_requests_total",
			Help:      "E-utilities requests by endpoint and HTTP status",
		}, []string{"endpoint", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "eutils_request_duration_seconds",
			Help:      "E-utilities request duration",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"endpoint"}),

		links: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "linkout_links_total",
			Help:      "LinkOut references written by provider",
		}, []string{"provider"}),

		matches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_matches",
			Help:      "Number of records matching the search term",
		}),
	}

	reg.MustRegister(
		m.records,
		m.requests,
		m.requestDuration,
		m.links,
		m.matches,
	)
	return m
}

// Registry returns the registry of the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Record counts a processed record with one of Imported, Rejected or
// Failed results.
func (m *Metrics) Record(result string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(result).Inc()
}

// Request observes one E-utilities call. Status is 0 when no response
// was received.
func (m *Metrics) Request(endpoint string, status int, d time.Duration) {
	if m == nil {
		return
	}
	st := "error"
	if status > 0 {
		st = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(endpoint, st).Inc()
	m.requestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Links counts LinkOut references written for a provider.
func (m *Metrics) Links(provider string, n int) {
	if m == nil {
		return
	}
	m.links.WithLabelValues(provider).Add(float64(n))
}

// Matches sets the number of records that match the search term.
func (m *Metrics) Matches(n int) {
	if m == nil {
		return
	}
	m.matches.Set(float64(n))
}

// WriteFile saves all metrics to path in Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return WriteError(path, err)
	}
	return nil
}
