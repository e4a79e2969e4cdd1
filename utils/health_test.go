package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHealthMonitorReportsFailingDependency(t *testing.T) {
	m := NewHealthMonitor(time.Minute)
	m.Register("mongo", func(ctx context.Context) error { return nil })
	m.Register("draftStore", func(ctx context.Context) error { return errors.New("connection refused") })

	snap := m.RunOnce(context.Background())
	if snap.Healthy {
		t.Fatalf("expected degraded health with a failing dependency")
	}
	if !snap.Services["mongo"] {
		t.Fatalf("expected mongo to report healthy")
	}
	if snap.Services["draftStore"] {
		t.Fatalf("expected draftStore to report unhealthy")
	}
	if snap.CheckedAt.IsZero() {
		t.Fatalf("expected a check timestamp")
	}
}

func TestHealthMonitorAllHealthy(t *testing.T) {
	m := NewHealthMonitor(time.Minute)
	for _, name := range []string{"mongo", "rosterCache", "draftStore", "reminderQueue"} {
		m.Register(name, func(ctx context.Context) error { return nil })
	}

	snap := m.RunOnce(context.Background())
	if !snap.Healthy {
		t.Fatalf("expected healthy snapshot, got %+v", snap)
	}
	if len(snap.Services) != 4 {
		t.Fatalf("expected 4 services in the snapshot, got %d", len(snap.Services))
	}
}

func TestHealthMonitorSnapshotMatchesLastRun(t *testing.T) {
	m := NewHealthMonitor(time.Minute)
	failing := true
	m.Register("mongo", func(ctx context.Context) error {
		if failing {
			return errors.New("down")
		}
		return nil
	})

	m.RunOnce(context.Background())
	if m.Snapshot().Healthy {
		t.Fatalf("expected snapshot to reflect the failing run")
	}

	failing = false
	m.RunOnce(context.Background())
	if !m.Snapshot().Healthy {
		t.Fatalf("expected snapshot to reflect the recovered run")
	}
}

func TestGetHealthStatusWithoutMonitor(t *testing.T) {
	prev := defaultHealthMonitor
	defaultHealthMonitor = nil
	defer func() { defaultHealthMonitor = prev }()

	snap := GetHealthStatus()
	if snap.Healthy || snap.Services != nil {
		t.Fatalf("expected zero snapshot before a monitor is wired, got %+v", snap)
	}
}
