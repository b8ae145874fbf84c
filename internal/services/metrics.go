package services

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	framesProcessed     atomic.Int64
	framesDropped       atomic.Int64
	detectorErrors      atomic.Int64
	addEvents           atomic.Int64
	removeEvents        atomic.Int64
	fallbackResolves    atomic.Int64
	cropFailures        atomic.Int64
	lowConfidenceEvents atomic.Int64

	// cartWriteFailures counts events that were confirmed locally but not
	// durably persisted; nonzero means local/remote cart divergence.
	cartWriteFailures atomic.Int64

	activeWorkers atomic.Int32
	wsConnections atomic.Int64
	lastFrameTime atomic.Int64

	registry *prometheus.Registry
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.registerPrometheusMetrics()
	return m
}

func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = NewMetrics()
	})
	return metricsInstance
}

func (m *Metrics) registerPrometheusMetrics() {
	gauges := []struct {
		name string
		help string
		fn   func() float64
	}{
		{"cart_frames_processed_total", "Total frames run through tracking workers",
			func() float64 { return float64(m.framesProcessed.Load()) }},
		{"cart_frames_dropped_total", "Total pushed frames dropped on full queues",
			func() float64 { return float64(m.framesDropped.Load()) }},
		{"cart_detector_errors_total", "Total per-frame detector failures (frame skipped)",
			func() float64 { return float64(m.detectorErrors.Load()) }},
		{"cart_add_events_total", "Total confirmed item-added events",
			func() float64 { return float64(m.addEvents.Load()) }},
		{"cart_remove_events_total", "Total confirmed item-removed events",
			func() float64 { return float64(m.removeEvents.Load()) }},
		{"cart_resolution_fallbacks_total", "Total resolutions that fell past the similarity index",
			func() float64 { return float64(m.fallbackResolves.Load()) }},
		{"cart_crop_store_failures_total", "Total crop audit writes that failed",
			func() float64 { return float64(m.cropFailures.Load()) }},
		{"cart_low_confidence_events_total", "Adds withheld from the cart pending shopper confirmation",
			func() float64 { return float64(m.lowConfidenceEvents.Load()) }},
		{"cart_write_failures_total", "Events confirmed locally but not persisted to the cart store",
			func() float64 { return float64(m.cartWriteFailures.Load()) }},
		{"cart_active_workers", "Tracking workers currently running",
			func() float64 { return float64(m.activeWorkers.Load()) }},
		{"cart_ws_connections", "Open frame-ingestion WebSocket connections",
			func() float64 { return float64(m.wsConnections.Load()) }},
	}

	for _, g := range gauges {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: g.name, Help: g.help}, g.fn))
	}
}

// Handler serves the Prometheus exposition endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncrementFrames() {
	m.framesProcessed.Add(1)
	m.lastFrameTime.Store(time.Now().Unix())
}

func (m *Metrics) IncrementDropped()        { m.framesDropped.Add(1) }
func (m *Metrics) IncrementDetectorErrors() { m.detectorErrors.Add(1) }

func (m *Metrics) IncrementEvents(action string) {
	if action == "add" {
		m.addEvents.Add(1)
	} else {
		m.removeEvents.Add(1)
	}
}

func (m *Metrics) IncrementFallbacks()           { m.fallbackResolves.Add(1) }
func (m *Metrics) IncrementCropFailures()        { m.cropFailures.Add(1) }
func (m *Metrics) IncrementCartWriteFailures()   { m.cartWriteFailures.Add(1) }
func (m *Metrics) IncrementLowConfidenceEvents() { m.lowConfidenceEvents.Add(1) }

func (m *Metrics) WorkerStarted() { m.activeWorkers.Add(1) }
func (m *Metrics) WorkerStopped() { m.activeWorkers.Add(-1) }

func (m *Metrics) IncrementWSConnections() { m.wsConnections.Add(1) }
func (m *Metrics) DecrementWSConnections() { m.wsConnections.Add(-1) }

func (m *Metrics) GetTotalFrames() int64         { return m.framesProcessed.Load() }
func (m *Metrics) GetTotalErrors() int64         { return m.detectorErrors.Load() }
func (m *Metrics) GetCartWriteFailures() int64   { return m.cartWriteFailures.Load() }
func (m *Metrics) GetLowConfidenceEvents() int64 { return m.lowConfidenceEvents.Load() }
func (m *Metrics) GetActiveWorkers() int         { return int(m.activeWorkers.Load()) }
func (m *Metrics) GetLastFrameTime() int64       { return m.lastFrameTime.Load() }

// Snapshot backs the JSON /api/metrics endpoint.
func (m *Metrics) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"frames_processed":      m.framesProcessed.Load(),
		"frames_dropped":        m.framesDropped.Load(),
		"detector_errors":       m.detectorErrors.Load(),
		"add_events":            m.addEvents.Load(),
		"remove_events":         m.removeEvents.Load(),
		"resolution_fallbacks":  m.fallbackResolves.Load(),
		"crop_store_failures":   m.cropFailures.Load(),
		"low_confidence_events": m.lowConfidenceEvents.Load(),
		"cart_write_failures":   m.cartWriteFailures.Load(),
		"active_workers":        m.activeWorkers.Load(),
		"ws_connections":        m.wsConnections.Load(),
	}
}
