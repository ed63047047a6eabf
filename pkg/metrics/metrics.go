// Package metrics provides Prometheus metrics for the scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ScannerMetrics collects and exposes scan-related Prometheus metrics.
type ScannerMetrics struct {
	registry *prometheus.Registry

	// Scan metrics
	ScansTotal     *prometheus.CounterVec
	ScanDuration   *prometheus.HistogramVec
	ScanErrors     *prometheus.CounterVec
	ContractsSeen  *prometheus.GaugeVec
	BookEventsSeen *prometheus.GaugeVec

	// Opportunity metrics
	OpportunitiesFound *prometheus.GaugeVec
	OpportunityEV      *prometheus.HistogramVec

	// Odds feed quota
	QuotaRemaining *prometheus.GaugeVec
	QuotaUsed      *prometheus.GaugeVec

	// Streaming
	StreamClients *prometheus.GaugeVec
}

// NewScannerMetrics creates a new scanner metrics collector.
func NewScannerMetrics() *ScannerMetrics {
	registry := prometheus.NewRegistry()

	sm := &ScannerMetrics{
		registry: registry,

		ScansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgewire_scans_total",
				Help: "Total number of scans run",
			},
			[]string{"sport", "status"},
		),
		ScanDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "edgewire_scan_duration_seconds",
				Help:    "Wall time of one sport scan",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~100s
			},
			[]string{"sport"},
		),
		ScanErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgewire_scan_errors_total",
				Help: "Total number of upstream fetch errors",
			},
			[]string{"sport", "source"},
		),
		ContractsSeen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_contracts_seen",
				Help: "Prediction-market events fetched in the last scan",
			},
			[]string{"sport"},
		),
		BookEventsSeen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_book_events_seen",
				Help: "Sportsbook events fetched in the last scan",
			},
			[]string{"sport"},
		),

		OpportunitiesFound: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_opportunities",
				Help: "Opportunities found in the last scan",
			},
			[]string{"sport", "quality"},
		),
		OpportunityEV: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "edgewire_opportunity_ev_percent",
				Help:    "EV percentage of matched opportunities",
				Buckets: []float64{-20, -10, -5, -2, 0, 2, 5, 10, 20, 50},
			},
			[]string{"sport"},
		),

		QuotaRemaining: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_odds_quota_remaining",
				Help: "Odds feed requests remaining this period",
			},
			[]string{},
		),
		QuotaUsed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_odds_quota_used",
				Help: "Odds feed requests used this period",
			},
			[]string{},
		),

		StreamClients: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgewire_stream_clients",
				Help: "Connected WebSocket clients",
			},
			[]string{},
		),
	}

	sm.registerAll()

	return sm
}

func (sm *ScannerMetrics) registerAll() {
	sm.registry.MustRegister(
		sm.ScansTotal,
		sm.ScanDuration,
		sm.ScanErrors,
		sm.ContractsSeen,
		sm.BookEventsSeen,
		sm.OpportunitiesFound,
		sm.OpportunityEV,
		sm.QuotaRemaining,
		sm.QuotaUsed,
		sm.StreamClients,
	)
}

// Registry returns the prometheus registry.
func (sm *ScannerMetrics) Registry() *prometheus.Registry {
	return sm.registry
}

// RecordScan records a completed sport scan.
func (sm *ScannerMetrics) RecordScan(sport, status string, durationSec float64) {
	sm.ScansTotal.WithLabelValues(sport, status).Inc()
	if durationSec > 0 {
		sm.ScanDuration.WithLabelValues(sport).Observe(durationSec)
	}
}

// RecordScanError records an upstream fetch failure.
func (sm *ScannerMetrics) RecordScanError(sport, source string) {
	sm.ScanErrors.WithLabelValues(sport, source).Inc()
}

// UpdateInputs records the input sizes of the last scan.
func (sm *ScannerMetrics) UpdateInputs(sport string, contracts, bookEvents int) {
	sm.ContractsSeen.WithLabelValues(sport).Set(float64(contracts))
	sm.BookEventsSeen.WithLabelValues(sport).Set(float64(bookEvents))
}

// RecordOpportunities records the outcome of a matching pass.
func (sm *ScannerMetrics) RecordOpportunities(sport string, byQuality map[string]int, evPercents []float64) {
	for quality, n := range byQuality {
		sm.OpportunitiesFound.WithLabelValues(sport, quality).Set(float64(n))
	}
	for _, ev := range evPercents {
		sm.OpportunityEV.WithLabelValues(sport).Observe(ev)
	}
}

// UpdateQuota updates the odds feed quota gauges.
func (sm *ScannerMetrics) UpdateQuota(remaining, used int) {
	sm.QuotaRemaining.WithLabelValues().Set(float64(remaining))
	sm.QuotaUsed.WithLabelValues().Set(float64(used))
}

// UpdateStreamClients updates the connected client count.
func (sm *ScannerMetrics) UpdateStreamClients(count int) {
	sm.StreamClients.WithLabelValues().Set(float64(count))
}
