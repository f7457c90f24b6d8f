package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ceres-hq/ceres/pkg/catalog/manager"
	"ceres-hq/ceres/pkg/catalog/source"
	"ceres-hq/ceres/pkg/cli"
	"ceres-hq/ceres/pkg/engine"
)

func TestWatchCommandExists(t *testing.T) {
	if watchCmd == nil {
		t.Fatal("watchCmd is nil")
	}
	if !watchCmd.SilenceUsage {
		t.Error("watchCmd.SilenceUsage = false, want true")
	}
	if watchCmd.Args == nil {
		t.Error("watchCmd.Args should require at least one document")
	}
}

func TestRunWatchRequiresRefreshConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ceres.yaml")
	if err := os.WriteFile(path, []byte("catalog:\n  source: builtin\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	orig := cfgFile
	cfgFile = path
	defer func() { cfgFile = orig }()

	err := runWatch(watchCmd, []string{"label.json"})
	var cfgErr *cli.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("runWatch() error = %v, want ConfigError", err)
	}
	if cfgErr.Field != "catalog.watch" {
		t.Errorf("ConfigError.Field = %q, want catalog.watch", cfgErr.Field)
	}
}

func TestRevalidate(t *testing.T) {
	m, err := manager.NewManager(source.Builtin(), nil)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	doc := filepath.Join(t.TempDir(), "label.json")
	content := `{"nutrition_data": {"calories": 150}, "format": "standard_vertical"}`
	if err := os.WriteFile(doc, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write label file: %v", err)
	}

	if err := revalidate(context.Background(), m, []engine.Option{}, []string{doc}); err != nil {
		t.Errorf("revalidate() error = %v", err)
	}

	// Unreadable documents are reported in place, not fatal to the
	// watch loop.
	missing := filepath.Join(t.TempDir(), "absent.json")
	if err := revalidate(context.Background(), m, nil, []string{missing}); err != nil {
		t.Errorf("revalidate() with missing document error = %v", err)
	}
}
