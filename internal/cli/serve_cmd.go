package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/aiact/internal/api"
	"github.com/alexanderramin/aiact/internal/config"
	"github.com/alexanderramin/aiact/internal/metrics"
	"github.com/alexanderramin/aiact/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr    string
		origins []string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP classification service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("allowed-origins") {
				cfg.AllowedOrigins = origins
			}
			if cmd.Flags().Changed("strict-purpose") {
				cfg.StrictPurpose = strict
			}

			logger := app.logger()
			handler, err := newServiceHandler(cfg, logger)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Handler:      handler,
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}
			return runServer(ctx, srv, ln, cfg, logger)
		},
	}

	defaults := app.Config
	cmd.Flags().StringVar(&addr, "addr", defaults.Addr, "Listen address")
	cmd.Flags().StringSliceVar(&origins, "allowed-origins", defaults.AllowedOrigins, "CORS allowed origins")
	cmd.Flags().BoolVar(&strict, "strict-purpose", defaults.StrictPurpose, "Require a system purpose of at least 20 characters")

	return cmd
}

// newServiceHandler wires services, metrics and the HTTP router for one
// server instance. Each call gets its own Prometheus registry.
func newServiceHandler(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	gin.SetMode(cfg.GinMode)

	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}

	logObserver := service.NewSlogUseCaseObserver(logger)
	return api.NewHandler(api.Options{
		Classifier:     service.NewClassificationService(logObserver, collector),
		Reports:        service.NewReportService(logObserver, collector),
		Logger:         logger,
		HTTPObserver:   collector,
		Gatherer:       reg,
		AllowedOrigins: cfg.AllowedOrigins,
		MinPurposeLen:  cfg.MinPurposeLen(),
	}), nil
}

// runServer serves on ln until ctx is done, then shuts down gracefully
// within cfg.ShutdownTimeout.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, cfg config.Config, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", ln.Addr().String(), "strict_purpose", cfg.StrictPurpose)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
