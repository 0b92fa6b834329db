package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records promotion resolution and group price cascade
// outcomes. A nil receiver is a no-op so callers can leave metrics unwired.
type PricingMetrics struct {
	resolutions     *prometheus.CounterVec
	resolutionTime  *prometheus.HistogramVec
	cascadeUpdated  prometheus.Counter
	cascadeSkipped  prometheus.Counter
	cascadeFailures prometheus.Counter
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "promotion_resolutions_total",
		Help: "Promotion resolution outcomes by winning scope.",
	}, []string{"scope"})
	resolutionTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promotion_resolution_seconds",
		Help:    "Duration of batch promotion resolution in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	cascadeUpdated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "group_price_cascade_updated_total",
		Help: "Combinations updated by group price cascades.",
	})
	cascadeSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "group_price_cascade_skipped_total",
		Help: "Combinations skipped by group price cascades because they carry their own price.",
	})
	cascadeFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "group_price_cascade_failures_total",
		Help: "Combination updates that failed during group price cascades.",
	})
	reg.MustRegister(resolutions, resolutionTime, cascadeUpdated, cascadeSkipped, cascadeFailures)
	return &PricingMetrics{
		resolutions:     resolutions,
		resolutionTime:  resolutionTime,
		cascadeUpdated:  cascadeUpdated,
		cascadeSkipped:  cascadeSkipped,
		cascadeFailures: cascadeFailures,
	}
}

// IncResolution increments the resolution counter for the winning scope.
// Use "none" when no promotion applied.
func (p *PricingMetrics) IncResolution(scope string) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(normalizeLabel(scope)).Inc()
}

// ObserveResolutionDuration records how long a resolution pass took.
func (p *PricingMetrics) ObserveResolutionDuration(operation string, duration time.Duration) {
	if p == nil || p.resolutionTime == nil {
		return
	}
	p.resolutionTime.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// AddCascadeUpdated counts combinations written by a cascade run.
func (p *PricingMetrics) AddCascadeUpdated(n int) {
	if p == nil || p.cascadeUpdated == nil || n <= 0 {
		return
	}
	p.cascadeUpdated.Add(float64(n))
}

// AddCascadeSkipped counts combinations a cascade left untouched.
func (p *PricingMetrics) AddCascadeSkipped(n int) {
	if p == nil || p.cascadeSkipped == nil || n <= 0 {
		return
	}
	p.cascadeSkipped.Add(float64(n))
}

// AddCascadeFailures counts combination writes that errored mid-cascade.
func (p *PricingMetrics) AddCascadeFailures(n int) {
	if p == nil || p.cascadeFailures == nil || n <= 0 {
		return
	}
	p.cascadeFailures.Add(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
