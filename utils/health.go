package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// probeTimeout bounds each individual dependency check.
const probeTimeout = 3 * time.Second

// Probe checks one dependency. A nil error means healthy.
type Probe func(ctx context.Context) error

// HealthSnapshot is the per-dependency health state served on /health.
type HealthSnapshot struct {
	Services  map[string]bool `json:"services"`
	Healthy   bool            `json:"healthy"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor periodically runs named probes against the platform's
// dependencies: mongo, the roster cache, the draft store and the reminder
// queue.
type HealthMonitor struct {
	mu       sync.RWMutex
	interval time.Duration
	probes   map[string]Probe
	current  HealthSnapshot
}

// NewHealthMonitor creates a monitor probing on the given interval.
func NewHealthMonitor(interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &HealthMonitor{
		interval: interval,
		probes:   make(map[string]Probe),
	}
}

// Register adds a named dependency probe. Call before Start.
func (m *HealthMonitor) Register(name string, probe Probe) {
	m.probes[name] = probe
}

// RunOnce executes every probe, stores the snapshot and returns it. Failing
// dependencies are logged by name.
func (m *HealthMonitor) RunOnce(ctx context.Context) HealthSnapshot {
	logger := GetLogger()

	services := make(map[string]bool, len(m.probes))
	healthy := true
	for name, probe := range m.probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := probe(probeCtx)
		cancel()

		services[name] = err == nil
		if err != nil {
			healthy = false
			logger.Warn("Dependency health check failed",
				zap.String("service", name), zap.Error(err))
		}
	}

	snapshot := HealthSnapshot{
		Services:  services,
		Healthy:   healthy,
		CheckedAt: time.Now(),
	}

	m.mu.Lock()
	m.current = snapshot
	m.mu.Unlock()
	return snapshot
}

// Start runs the probes on the configured interval in the background. The
// first pass runs immediately so /health is populated at startup.
func (m *HealthMonitor) Start() {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		ctx := context.Background()
		m.RunOnce(ctx)
		for range ticker.C {
			m.RunOnce(ctx)
		}
	}()
}

// Snapshot returns the latest stored health state.
func (m *HealthMonitor) Snapshot() HealthSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// MongoProbe builds a probe over a MongoDB client.
func MongoProbe(client *mongo.Client) Probe {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

// RedisProbe builds a probe over a Redis client.
func RedisProbe(client *redis.Client) Probe {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

var defaultHealthMonitor *HealthMonitor

// SetDefaultHealthMonitor wires the monitor whose snapshot /health serves.
func SetDefaultHealthMonitor(m *HealthMonitor) {
	defaultHealthMonitor = m
}

// GetHealthStatus returns the latest snapshot from the default monitor.
func GetHealthStatus() HealthSnapshot {
	if defaultHealthMonitor == nil {
		return HealthSnapshot{}
	}
	return defaultHealthMonitor.Snapshot()
}
