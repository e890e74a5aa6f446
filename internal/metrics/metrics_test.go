package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/aiact/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ClassifyEvents(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	ctx := context.Background()
	c.ObserveUseCase(ctx, service.UseCaseEvent{Name: "classify", Success: true, Fields: map[string]any{"category": "High-Risk"}})
	c.ObserveUseCase(ctx, service.UseCaseEvent{Name: "classify", Success: true, Fields: map[string]any{"category": "High-Risk"}})
	c.ObserveUseCase(ctx, service.UseCaseEvent{Name: "classify", Success: true, Fields: map[string]any{"category": "PROHIBITED"}})
	c.ObserveUseCase(ctx, service.UseCaseEvent{Name: "explain", Success: true, Fields: map[string]any{"category": "PROHIBITED"}})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.classifications.WithLabelValues("High-Risk")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.classifications.WithLabelValues("PROHIBITED")))
}

func TestCollector_ReportFailures(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveUseCase(context.Background(), service.UseCaseEvent{Name: "export-report", Success: true})
	c.ObserveUseCase(context.Background(), service.UseCaseEvent{Name: "export-report", Err: errors.New("x")})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.reportFailures))
}

func TestCollector_HTTP(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveHTTP("POST", "/api/classify", 200, time.Millisecond)
	c.ObserveHTTP("GET", "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "/api/classify", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}
