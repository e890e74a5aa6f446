// Package metrics exposes Prometheus collectors for classifications and
// HTTP traffic.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/aiact/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the service collectors. It implements
// service.UseCaseObserver so it can be chained with the log observer.
type Collector struct {
	classifications *prometheus.CounterVec
	duration        prometheus.Histogram
	reportFailures  prometheus.Counter
	httpRequests    *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiact_classifications_total",
				Help: "Classifications performed, by resulting risk category.",
			},
			[]string{"category"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "aiact_classification_duration_seconds",
				Help:    "Time spent in the classifier.",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
			},
		),
		reportFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "aiact_report_failures_total",
				Help: "Report render or export failures.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiact_http_requests_total",
				Help: "HTTP requests handled, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
	}

	for _, col := range []prometheus.Collector{c.classifications, c.duration, c.reportFailures, c.httpRequests} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return c, nil
}

// ObserveUseCase records classify events and report failures.
func (c *Collector) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	switch event.Name {
	case "classify":
		category, _ := event.Fields["category"].(string)
		c.classifications.WithLabelValues(category).Inc()
		c.duration.Observe(event.Duration.Seconds())
	case "render-report", "export-report":
		if !event.Success {
			c.reportFailures.Inc()
		}
	}
}

// ObserveHTTP counts one handled HTTP request.
func (c *Collector) ObserveHTTP(method, route string, status int, _ time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
