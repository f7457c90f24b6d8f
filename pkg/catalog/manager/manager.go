package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/catalog/source"
)

// Manager coordinates catalog loading and refresh. It validates a new
// dataset by building a catalog from it before swapping it in, so a
// broken dataset never replaces a working one.
type Manager struct {
	source source.Source
	logger *slog.Logger

	mu            sync.RWMutex
	current       *catalog.Catalog
	lastLoadTime  time.Time
	lastLoadError error
	reloadCount   int
}

// NewManager creates a catalog manager over the given source. Call
// Load before Catalog.
func NewManager(src source.Source, logger *slog.Logger) (*Manager, error) {
	if src == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		source: src,
		logger: logger.With("component", "catalog.manager"),
	}, nil
}

// Load loads the dataset from the source, builds a catalog from it,
// and atomically makes it the active catalog. On failure the previous
// catalog (if any) stays active and the error is recorded.
func (m *Manager) Load(ctx context.Context) error {
	startTime := time.Now()

	dataset, err := m.source.Load(ctx)
	if err == nil {
		var built *catalog.Catalog
		built, err = dataset.Build()
		if err == nil {
			m.mu.Lock()
			m.current = built
			m.lastLoadTime = time.Now()
			m.lastLoadError = nil
			m.reloadCount++
			m.mu.Unlock()

			m.logger.Info("catalog loaded",
				"version", built.Version(),
				"rules", built.RuleCount(),
				"duration_ms", time.Since(startTime).Milliseconds(),
			)
			return nil
		}
	}

	loadErr := &LoadError{Source: fmt.Sprintf("%T", m.source), Err: err}

	m.mu.Lock()
	m.lastLoadError = loadErr
	m.mu.Unlock()

	m.logger.Error("catalog load failed, keeping previous catalog",
		"error", err,
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	return loadErr
}

// Reload reloads the catalog from the source. It is Load under a name
// that reads better at watcher and scheduler call sites.
func (m *Manager) Reload(ctx context.Context) error {
	return m.Load(ctx)
}

// Catalog returns the active catalog, or nil before the first
// successful Load.
func (m *Manager) Catalog() *catalog.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LastLoadTime returns when the active catalog was loaded.
func (m *Manager) LastLoadTime() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastLoadTime
}

// LastLoadError returns the error from the most recent load attempt,
// or nil if it succeeded.
func (m *Manager) LastLoadError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastLoadError
}

// ReloadCount returns the number of successful loads.
func (m *Manager) ReloadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reloadCount
}
