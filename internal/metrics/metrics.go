// Package metrics holds the Prometheus instruments for curve quotes.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

// Result labels for curve_quotes_total.
const (
	ResultOK           = "ok"
	ResultInputError   = "input_error"
	ResultDomainError  = "domain_error"
	ResultCurveState   = "curve_state_error"
	ResultUnknownError = "error"
)

// Metrics holds all the Prometheus metrics for quote evaluation.
type Metrics struct {
	quoteDuration *prometheus.HistogramVec
	quotesTotal   *prometheus.CounterVec
}

// NewMetrics creates and registers the quote metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		quoteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "curve_quote_duration_seconds",
			Help:    "Time taken to evaluate a single curve operation.",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"op"}),
		quotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curve_quotes_total",
			Help: "Total number of curve quotes, labeled by operation and result.",
		}, []string{"op", "result"}),
	}
	reg.MustRegister(m.quoteDuration, m.quotesTotal)
	return m
}

// ObserveQuote records one evaluation of op that started at start.
func (m *Metrics) ObserveQuote(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.quoteDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.quotesTotal.WithLabelValues(op, Classify(err)).Inc()
}

// Classify maps a quote error onto its result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, curves.ErrInputParse):
		return ResultInputError
	case errors.Is(err, curves.ErrArithmeticDomain):
		return ResultDomainError
	case errors.Is(err, curves.ErrInvalidCurveState):
		return ResultCurveState
	default:
		return ResultUnknownError
	}
}
