// Package metrics exposes the service's Prometheus collectors: command outcomes,
// validation failures per aggregate, HTTP traffic and the product expiration job.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"frosty/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frosty"

// Command results used as the "result" label.
const (
	ResultOK               = "ok"
	ResultValidationFailed = "validation_failed"
	ResultNotFound         = "not_found"
	ResultInvalidInput     = "invalid_input"
	ResultError            = "error"
)

type Metrics struct {
	validationFailures *prometheus.CounterVec
	commands           *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
	expiredProducts    prometheus.Counter
}

// New creates the collectors and registers them with registerer. Collectors that
// are already registered are reused, so New may be called more than once per
// registry.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		validationFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Operations rejected because the aggregate violated its invariants.",
		}, []string{"aggregate"})),
		commands: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Handled commands by outcome.",
		}, []string{"command", "result"})),
		httpRequests: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"})),
		httpLatency: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})),
		expiredProducts: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_products_deactivated_total",
			Help:      "Products deactivated by the expiration job.",
		})),
	}
}

// Result classifies a command error into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, errs.ErrValidationFailed):
		return ResultValidationFailed
	case errors.Is(err, errs.ErrObjectNotFound):
		return ResultNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ResultInvalidInput
	default:
		return ResultError
	}
}

// ObserveCommand counts one handled command. Validation failures are also counted
// against aggregate.
func (m *Metrics) ObserveCommand(command, aggregate string, err error) {
	if m == nil {
		return
	}

	result := Result(err)
	m.commands.WithLabelValues(command, result).Inc()
	if result == ResultValidationFailed {
		m.validationFailures.WithLabelValues(aggregate).Inc()
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AddExpiredProducts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.expiredProducts.Add(float64(n))
}

// Handler serves the metrics gathered by gatherer in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %v", err))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}
