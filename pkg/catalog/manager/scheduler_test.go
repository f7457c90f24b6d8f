package manager

import (
	"context"
	"testing"

	"ceres-hq/ceres/pkg/catalog/source"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(source.Builtin(), nil)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestSchedulerEmptyScheduleIsNoop(t *testing.T) {
	s := NewScheduler(newTestManager(t), "", nil)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if s.IsRunning() {
		t.Error("IsRunning() = true for empty schedule")
	}
	if s.NextRefresh() != nil {
		t.Error("NextRefresh() != nil for empty schedule")
	}
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(newTestManager(t), "every sometimes", nil)
	if err := s.Start(context.Background()); err == nil {
		t.Fatal("Start() error = nil for invalid schedule")
	}
	if s.IsRunning() {
		t.Error("IsRunning() = true after failed Start")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScheduler(newTestManager(t), "0 3 * * *", nil)
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !s.IsRunning() {
		t.Fatal("IsRunning() = false after Start")
	}
	if s.NextRefresh() == nil {
		t.Error("NextRefresh() = nil while running")
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
}
