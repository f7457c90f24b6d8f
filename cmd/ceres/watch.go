package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/catalog/manager"
	"ceres-hq/ceres/pkg/cli"
	"ceres-hq/ceres/pkg/engine"
	"ceres-hq/ceres/pkg/label"
	"ceres-hq/ceres/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch [label.json ...]",
	Short: "Revalidate label documents whenever the catalog changes",
	Long: `Run validation continuously against a changing rule catalog.

The command validates the given label documents once, then keeps the
catalog fresh and revalidates them after every reload. Reloads come
from the file watcher (catalog.watch with the file source), from the
cron refresh schedule (catalog.refresh_schedule), or both. At least
one of the two must be configured.

When telemetry.metrics.enabled is set, validation outcomes are
recorded as Prometheus metrics; telemetry.metrics.listen_address
additionally serves them over HTTP at /metrics.

The command runs until interrupted.

Examples:
  # Revalidate on every catalog file change
  ceres watch --config ceres.yaml label.json

  # Nightly refresh of a sqlite catalog, with metrics
  CERES_TELEMETRY_METRICS_ENABLED=true ceres watch -c ceres.yaml labels/*.json`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runWatch,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if !cfg.Catalog.Watch && cfg.Catalog.RefreshSchedule == "" {
		return cli.NewConfigError("catalog.watch",
			"watch mode requires catalog.watch or catalog.refresh_schedule")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSource, err := newCatalogSource(cfg, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer closeSource()

	m, err := manager.NewManager(src, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	if err := m.Load(ctx); err != nil {
		return cli.NewCommandError("watch", err)
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Telemetry.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		recorder := metrics.NewValidationMetrics(metrics.Config{
			Namespace: cfg.Telemetry.Metrics.Namespace,
		}, registry)
		opts = append(opts, engine.WithRecorder(recorder))

		if addr := cfg.Telemetry.Metrics.ListenAddress; addr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", recorder.Handler())
			server := &http.Server{Addr: addr, Handler: mux}
			go func() {
				logger.Info("metrics endpoint listening", "address", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("metrics endpoint failed", "error", err)
				}
			}()
			defer server.Close()
		}
	}

	if cfg.Catalog.Watch {
		wcfg := manager.DefaultWatcherConfig()
		wcfg.Path = cfg.Catalog.Path
		watcher, err := manager.NewWatcher(wcfg, m, logger)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("catalog watcher exited", "error", err)
			}
		}()
		defer watcher.Stop()
	}

	if cfg.Catalog.RefreshSchedule != "" {
		scheduler := manager.NewScheduler(m, cfg.Catalog.RefreshSchedule, logger)
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer scheduler.Stop()
	}

	if err := revalidate(ctx, m, opts, args); err != nil {
		return err
	}

	// The manager exposes no reload notification, so poll its reload
	// counter. A one second lag after the debounced reload is fine for
	// an interactive loop.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	seen := m.ReloadCount()
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil

		case <-ticker.C:
			n := m.ReloadCount()
			if n == seen {
				continue
			}
			seen = n
			logger.Info("catalog reloaded, revalidating",
				"catalog_version", m.Catalog().Version(),
				"documents", len(args),
			)
			if err := revalidate(ctx, m, opts, args); err != nil {
				logger.Error("revalidation failed", "error", err)
			}
		}
	}
}

// revalidate runs every document through a validator built from the
// manager's current catalog. Schema and evaluation problems are
// reported per document; the loop never aborts the watch.
func revalidate(ctx context.Context, m *manager.Manager, opts []engine.Option, paths []string) error {
	validator, err := engine.NewValidator(m.Catalog(), opts...)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("%s: %v\n\n", path, err)
			continue
		}

		l, issues, err := label.ParseDocument(data)
		if err != nil {
			fmt.Printf("%s: %v\n\n", path, err)
			continue
		}
		if len(issues) > 0 {
			printSchemaIssues(path, issues)
			continue
		}

		report, err := validator.Evaluate(ctx, l)
		if err != nil {
			fmt.Printf("%s: evaluation failed: %v\n\n", path, err)
			continue
		}
		printReport(path, report)
	}
	return nil
}
