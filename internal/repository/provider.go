package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ianSurii/optimus-lead-management-dashboard/internal/analytics"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/model"
	"github.com/ianSurii/optimus-lead-management-dashboard/internal/telemetry"
)

// Provider hands out read-only snapshots of the dashboard data.
type Provider interface {
	// Snapshot returns the active snapshot, loading it on first use.
	Snapshot(ctx context.Context) (*model.Snapshot, error)
	// Reload builds a fresh snapshot and swaps it in. Readers holding the
	// previous snapshot keep using it. On failure the active one stays.
	Reload(ctx context.Context) (*model.Snapshot, error)
}

type loadFunc func(ctx context.Context) (*model.Snapshot, error)

// snapshotCache loads lazily and swaps copy-on-write.
type snapshotCache struct {
	source string
	load   loadFunc

	mu  sync.Mutex
	cur atomic.Pointer[model.Snapshot]
}

func newSnapshotCache(source string, load loadFunc) *snapshotCache {
	return &snapshotCache{source: source, load: load}
}

func (c *snapshotCache) get(ctx context.Context) (*model.Snapshot, error) {
	if s := c.cur.Load(); s != nil {
		return s, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.cur.Load(); s != nil {
		return s, nil
	}
	return c.reloadLocked(ctx)
}

func (c *snapshotCache) reload(ctx context.Context) (*model.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloadLocked(ctx)
}

func (c *snapshotCache) reloadLocked(ctx context.Context) (*model.Snapshot, error) {
	start := time.Now()
	s, err := c.load(ctx)
	if err != nil {
		telemetry.SnapshotLoadsTotal.WithLabelValues(c.source, "error").Inc()
		return nil, fmt.Errorf("%w: %w", analytics.ErrDataUnavailable, err)
	}
	if s.LoadedAt.IsZero() {
		s.LoadedAt = time.Now()
	}
	c.cur.Store(s)

	telemetry.SnapshotLoadsTotal.WithLabelValues(c.source, "ok").Inc()
	telemetry.SnapshotTransactions.Set(float64(len(s.Transactions)))
	telemetry.SnapshotLoadedAt.Set(float64(s.LoadedAt.Unix()))
	log.Info().
		Str("source", c.source).
		Int("transactions", len(s.Transactions)).
		Int("branches", len(s.Lookups.Branches)).
		Dur("took", time.Since(start)).
		Msg("snapshot loaded")
	return s, nil
}
