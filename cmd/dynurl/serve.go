package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/dynurl"
	"github.com/aretw0/dynurl/internal/cli"
	"github.com/aretw0/dynurl/internal/presentation/tui"
	httpAdapter "github.com/aretw0/dynurl/pkg/adapters/http"
	"github.com/aretw0/dynurl/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rewrite HTTP service",
	Long:  `Starts the engine behind a JSON API (GET and POST /rewrite) with health, info, OpenAPI and Prometheus metrics routes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("listen") {
			settings.Listen, _ = cmd.Flags().GetString("listen")
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		logger := newLogger(settings)

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics, err := observability.NewMetrics(registry)
		if err != nil {
			return err
		}

		rt, err := cli.NewRuntime(settings, logger, engineHooks(settings, logger, metrics.Hooks())...)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cli.WithInterrupt(context.Background())
		defer ctx.Stop()

		if err := rt.Watch(ctx); err != nil {
			return err
		}

		opts := []httpAdapter.Option{
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
			httpAdapter.WithLogger(logger),
		}
		if hc, ok := rt.Namespace.(httpAdapter.HealthChecker); ok {
			opts = append(opts, httpAdapter.WithHealthChecker(hc))
		}

		srv := &http.Server{
			Addr:              settings.Listen,
			Handler:           httpAdapter.NewHandler(rt.Engine, opts...),
			ReadHeaderTimeout: 5 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			tui.PrintBanner(cmd.ErrOrStderr(), dynurl.Version)
			logger.Info("Starting dynurl server", "addr", srv.Addr, "namespace", settings.Namespace.Kind,
				"fallback", settings.AllowNamespaceFallback)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("dynurl server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
}
