package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "codecopilot"

// outcome label values
const (
	OutcomeSuccess = "success"
)

// counters and histograms for the generation and history paths.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	GenerationsTotal        *prometheus.CounterVec
	ProviderDurationSeconds *prometheus.HistogramVec
	ProviderTokensTotal     *prometheus.CounterVec
	HistoryReadsTotal       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// registers all metrics on reg
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation requests by outcome (success or error kind)",
		}, []string{"outcome"}),

		ProviderDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Inference provider call latency in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"outcome"}),

		ProviderTokensTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_tokens_total",
			Help:      "Tokens reported by the provider, by direction",
		}, []string{"direction"}),

		HistoryReadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_reads_total",
			Help:      "History page reads by outcome",
		}, []string{"outcome"}),

		gatherer: reg,
	}
}

func (m *Metrics) RecordGeneration(outcome string) {
	if m == nil {
		return
	}

	m.GenerationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveProviderCall(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.ProviderDurationSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordTokens(input, output int) {
	if m == nil {
		return
	}

	m.ProviderTokensTotal.WithLabelValues("input").Add(float64(input))
	m.ProviderTokensTotal.WithLabelValues("output").Add(float64(output))
}

func (m *Metrics) RecordHistoryRead(outcome string) {
	if m == nil {
		return
	}

	m.HistoryReadsTotal.WithLabelValues(outcome).Inc()
}

// serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
