package main

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusExporter serves a registry on its own listener.
type PrometheusExporter struct {
	Path     string // e.g., "/metrics"
	Listen   string // e.g., ":2550"
	Registry *prometheus.Registry
}

// Start begins the HTTP server to serve Prometheus metrics.
func (e *PrometheusExporter) Start() error {
	mux := http.NewServeMux()
	mux.Handle(e.Path, promhttp.HandlerFor(e.Registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(e.Listen, mux)
}

type conversionKey struct {
	operation, source, result string
}

// Metrics counts transcoding activity. The zero value is not usable, use
// NewMetrics.
type Metrics struct {
	mu          sync.Mutex
	conversions map[conversionKey]uint64
	missed      map[string]uint64 // by operation
	pairs       map[string]uint64 // seek winners, "locking/single"
	segments    uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		conversions: make(map[conversionKey]uint64),
		missed:      make(map[string]uint64),
		pairs:       make(map[string]uint64),
	}
}

func (m *Metrics) observe(rec ConversionRecord) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	result := rec.Result
	if result == "" {
		result = "ok"
	}
	m.conversions[conversionKey{rec.Operation, rec.Source, result}]++
	m.missed[rec.Operation] += uint64(rec.Missed)
	m.segments += uint64(rec.Segments)
	if rec.Operation == "seek" {
		m.pairs[rec.Locking+"/"+rec.Single]++
	}
}

func (m *Metrics) observeError(operation, source string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.conversions[conversionKey{operation, source, "error"}]++
	m.mu.Unlock()
}

// MetricExporter is the prometheus.Collector view of Metrics.
type MetricExporter struct {
	desc    map[string]*prometheus.Desc
	id      string
	metrics *Metrics
}

// NewMetricExporter initializes the MetricExporter with descriptions for each required metric.
func NewMetricExporter(id string, metrics *Metrics) *MetricExporter {
	constLabels := prometheus.Labels{"server_id": id}
	metricDesc := map[string]*prometheus.Desc{
		"conversions":     prometheus.NewDesc("gsm7_conversions_total", "Transcoding requests handled", []string{"operation", "source", "result"}, constLabels),
		"missed":          prometheus.NewDesc("gsm7_missed_characters_total", "Characters replaced by a space", []string{"operation"}, constLabels),
		"shift_tables":    prometheus.NewDesc("gsm7_seek_tables_total", "Shift table pairs chosen by seek", []string{"tables"}, constLabels),
		"segments":        prometheus.NewDesc("gsm7_segments_total", "Segments produced by split", nil, constLabels),
		"language_tables": prometheus.NewDesc("gsm7_language_tables", "National language tables available", nil, constLabels),
	}

	return &MetricExporter{
		desc:    metricDesc,
		id:      id,
		metrics: metrics,
	}
}

// Describe sends all metric descriptions to the Prometheus channel.
func (e *MetricExporter) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range e.desc {
		ch <- desc
	}
}

// Collect snapshots the counters.
func (e *MetricExporter) Collect(ch chan<- prometheus.Metric) {
	m := e.metrics
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range m.conversions {
		ch <- prometheus.MustNewConstMetric(e.desc["conversions"], prometheus.CounterValue, float64(v), k.operation, k.source, k.result)
	}
	for op, v := range m.missed {
		ch <- prometheus.MustNewConstMetric(e.desc["missed"], prometheus.CounterValue, float64(v), op)
	}
	for pair, v := range m.pairs {
		ch <- prometheus.MustNewConstMetric(e.desc["shift_tables"], prometheus.CounterValue, float64(v), pair)
	}
	ch <- prometheus.MustNewConstMetric(e.desc["segments"], prometheus.CounterValue, float64(m.segments))
	ch <- prometheus.MustNewConstMetric(e.desc["language_tables"], prometheus.GaugeValue, float64(len(tableInfo())))
}
