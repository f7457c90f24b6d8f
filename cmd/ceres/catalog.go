package main

import (
	"context"
	"fmt"
	"log/slog"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/catalog/manager"
	"ceres-hq/ceres/pkg/catalog/source"
	"ceres-hq/ceres/pkg/config"
)

// newCatalogSource builds the catalog source named by the
// configuration.
func newCatalogSource(cfg *config.Config, logger *slog.Logger) (source.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Catalog.Source {
	case "builtin", "":
		return source.Builtin(), noop, nil

	case "file":
		return source.NewFileSource(cfg.Catalog.Path, logger), noop, nil

	case "sqlite":
		src, err := source.NewSQLiteSource(&source.SQLiteConfig{
			Path:   cfg.Catalog.Path,
			Driver: cfg.Catalog.Driver,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// loadCatalog loads the active catalog for a one-shot command.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, func() error, error) {
	src, closeSource, err := newCatalogSource(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	m, err := manager.NewManager(src, logger)
	if err != nil {
		closeSource()
		return nil, nil, err
	}
	if err := m.Load(ctx); err != nil {
		closeSource()
		return nil, nil, err
	}

	return m.Catalog(), closeSource, nil
}
