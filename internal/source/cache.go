package source

import (
	"context"
	"sync"
	"time"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/logger"
)

type statsReporter interface {
	Stats() LoadStats
}

// Cache memoizes the snapshot of a Source. The first Get loads, later calls
// return the same snapshot until Invalidate or Reload. Failed loads are not
// memoized.
type Cache struct {
	src Source
	cls *dataset.Classifier
	log *logger.Logger
	now func() time.Time

	mu       sync.Mutex
	snap     *analysis.Snapshot
	checksum string
	loadedAt time.Time
	loads    int
}

// NewCache wraps src. cls decides which labels are aggregates.
func NewCache(src Source, cls *dataset.Classifier, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.NewNop()
	}
	return &Cache{
		src: src,
		cls: cls,
		log: log.WithSource(src.Name()),
		now: time.Now,
	}
}

// Get returns the cached snapshot, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*analysis.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil {
		return c.snap, nil
	}
	return c.loadLocked(ctx)
}

// Invalidate drops the cached snapshot so the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = nil
	c.checksum = ""
	c.loadedAt = time.Time{}
}

// Reload loads the source again and swaps the snapshot in on success. On
// failure the previous snapshot stays in place.
func (c *Cache) Reload(ctx context.Context) (*analysis.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadLocked(ctx)
}

// Checksum returns the checksum of the cached table, or "" before a load.
func (c *Cache) Checksum() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checksum
}

// LoadedAt returns when the cached snapshot was loaded.
func (c *Cache) LoadedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedAt
}

// Loads returns how many successful loads happened.
func (c *Cache) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

// Source returns the wrapped source.
func (c *Cache) Source() Source {
	return c.src
}

func (c *Cache) loadLocked(ctx context.Context) (*analysis.Snapshot, error) {
	start := c.now()
	table, err := c.src.Load(ctx)
	if err != nil {
		c.log.Errorw("Failed to load data", "error", err)
		return nil, err
	}

	snap, err := analysis.NewSnapshot(table, c.cls)
	if err != nil {
		c.log.Errorw("Loaded table is unusable", "error", err)
		return nil, err
	}

	fields := []interface{}{
		"rows", len(table),
		"countries", len(snap.Roster),
		"aggregates", len(snap.Aggregates),
		"min_year", snap.Bounds.MinYear,
		"max_year", snap.Bounds.MaxYear,
		"duration", c.now().Sub(start),
	}
	if sr, ok := c.src.(statsReporter); ok {
		if dropped := sr.Stats().DroppedNaN; dropped > 0 {
			c.log.Warnw("Dropped rows without a renewable share", "dropped", dropped)
			fields = append(fields, "dropped", dropped)
		}
	}
	c.log.Infow("Data loaded", fields...)

	c.snap = snap
	c.checksum = table.Checksum()
	c.loadedAt = c.now()
	c.loads++
	return snap, nil
}
