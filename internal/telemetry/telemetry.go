// Package telemetry provides OpenTelemetry tracing and Prometheus metrics
// for the legal query classification service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "lawagent"

// Metrics holds all service Prometheus metrics.
type Metrics struct {
	// Classification metrics
	QueriesClassified      *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	KeywordOverrides       prometheus.Counter
	ThresholdFallbacks     prometheus.Counter
	EmptyQueries           prometheus.Counter
	BatchSize              prometheus.Histogram

	// Feedback metrics
	FeedbackReceived  *prometheus.CounterVec
	FeedbackIgnored   prometheus.Counter
	FeedbackThrottled prometheus.Counter

	// Lookup metrics
	SectionLookups *prometheus.CounterVec
}

// Provider wraps the tracer and metrics handed to the core components.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initClassificationMetrics(m)
	initFeedbackMetrics(m)
	initLookupMetrics(m)
	return m
}

func initClassificationMetrics(m *Metrics) {
	m.QueriesClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawagent_queries_classified_total",
		Help: "Total queries classified, by resolved domain and method",
	}, []string{"domain", "method"})

	m.ClassificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lawagent_classification_duration_seconds",
		Help:    "Time to classify a single query",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	})

	m.KeywordOverrides = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawagent_keyword_overrides_total",
		Help: "Total classifications decided by a forced keyword override",
	})

	m.ThresholdFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawagent_threshold_fallbacks_total",
		Help: "Total classifications that fell below the confidence threshold",
	})

	m.EmptyQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawagent_empty_queries_total",
		Help: "Total empty queries answered with the enumerate-all fallback",
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lawagent_batch_size",
		Help:    "Distribution of batch classification sizes",
		Buckets: []float64{1, 5, 10, 25, 50, 100},
	})
}

func initFeedbackMetrics(m *Metrics) {
	m.FeedbackReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawagent_feedback_received_total",
		Help: "Total feedback submissions, by polarity",
	}, []string{"polarity"})

	m.FeedbackIgnored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawagent_feedback_ignored_total",
		Help: "Total feedback submissions matching neither lexicon nor rating threshold",
	})

	m.FeedbackThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lawagent_feedback_throttled_total",
		Help: "Total feedback submissions rejected by the rate limiter",
	})
}

func initLookupMetrics(m *Metrics) {
	m.SectionLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lawagent_section_lookups_total",
		Help: "Total statute section lookups, by code",
	}, []string{"code"})
}

// RecordClassification records one classification outcome. Safe on a nil provider.
func (p *Provider) RecordClassification(ctx context.Context, duration time.Duration, domainLabel, method string) {
	if p == nil {
		return
	}
	p.Metrics.QueriesClassified.WithLabelValues(domainLabel, method).Inc()
	p.Metrics.ClassificationDuration.Observe(duration.Seconds())

	_, span := p.Tracer.Start(ctx, "classify",
		trace.WithAttributes(
			attribute.String("classification.domain", domainLabel),
			attribute.String("classification.method", method),
		))
	span.End()
}

// RecordOverride counts a forced keyword override. Safe on a nil provider.
func (p *Provider) RecordOverride() {
	if p == nil {
		return
	}
	p.Metrics.KeywordOverrides.Inc()
}

// RecordFallback counts a below-threshold fallback to unknown. Safe on a nil provider.
func (p *Provider) RecordFallback() {
	if p == nil {
		return
	}
	p.Metrics.ThresholdFallbacks.Inc()
}

// RecordEmptyQuery counts an empty-query enumerate-all response. Safe on a nil provider.
func (p *Provider) RecordEmptyQuery() {
	if p == nil {
		return
	}
	p.Metrics.EmptyQueries.Inc()
}

// RecordFeedback records one feedback submission. Safe on a nil provider.
func (p *Provider) RecordFeedback(polarity string, applied bool) {
	if p == nil {
		return
	}
	p.Metrics.FeedbackReceived.WithLabelValues(polarity).Inc()
	if !applied {
		p.Metrics.FeedbackIgnored.Inc()
	}
}

// RecordBatch records a batch classification size. Safe on a nil provider.
func (p *Provider) RecordBatch(size int) {
	if p == nil {
		return
	}
	p.Metrics.BatchSize.Observe(float64(size))
}

// RecordSectionLookup counts a statute lookup. Safe on a nil provider.
func (p *Provider) RecordSectionLookup(code string) {
	if p == nil {
		return
	}
	p.Metrics.SectionLookups.WithLabelValues(code).Inc()
}

// RecordThrottled counts a rate-limited feedback submission. Safe on a nil provider.
func (p *Provider) RecordThrottled() {
	if p == nil {
		return
	}
	p.Metrics.FeedbackThrottled.Inc()
}
