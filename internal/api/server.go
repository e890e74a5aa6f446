// Package api exposes the classifier over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/alexanderramin/aiact/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const maxBodyBytes = 1 << 20

// Options wires the HTTP service.
type Options struct {
	Classifier     service.ClassificationService
	Reports        service.ReportService
	Logger         *slog.Logger
	HTTPObserver   HTTPObserver
	Gatherer       prometheus.Gatherer // nil disables /metrics
	AllowedOrigins []string
	MinPurposeLen  int
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		requestIDMiddleware(),
		accessLogMiddleware(logger, opts.HTTPObserver),
		recoveryMiddleware(logger),
		bodyLimitMiddleware(maxBodyBytes),
	)

	h := NewClassificationHandler(opts.Classifier, opts.Reports, logger, opts.MinPurposeLen)
	h.RegisterRoutes(r)

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// NewHandler returns the router wrapped in CORS handling for the
// configured origins.
func NewHandler(opts Options) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", HeaderRequestID},
		ExposedHeaders: []string{"Content-Disposition", HeaderRequestID},
	})
	return c.Handler(NewRouter(opts))
}
