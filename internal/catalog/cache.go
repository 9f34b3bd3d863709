package catalog

import (
	"sync"
	"time"

	"labquote/internal/models"
)

// Fetcher loads raw catalog rows from the external store.
type Fetcher func() ([]models.CatalogItem, error)

// SnapshotCache is an explicit cached-value wrapper around one Snapshot:
// GetOrRefresh serves the cached snapshot while it is younger than maxAge,
// and Invalidate forces the next read to rebuild. Writes to the store must
// call Invalidate on success.
type SnapshotCache struct {
	mu       sync.Mutex
	fetch    Fetcher
	snapshot *Snapshot
}

// NewSnapshotCache creates an empty cache over the given fetcher.
func NewSnapshotCache(fetch Fetcher) *SnapshotCache {
	return &SnapshotCache{fetch: fetch}
}

// GetOrRefresh returns the cached snapshot when it exists and is younger
// than maxAge; otherwise it fetches and rebuilds. When the store fails the
// cached state is left untouched and an empty snapshot is returned alongside
// the error, so callers degrade to an empty catalog instead of crashing.
func (c *SnapshotCache) GetOrRefresh(maxAge time.Duration) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && time.Since(c.snapshot.BuiltAt) < maxAge {
		return c.snapshot, nil
	}

	items, err := c.fetch()
	if err != nil {
		return &Snapshot{BuiltAt: time.Now()}, err
	}

	c.snapshot = BuildSnapshot(items)
	return c.snapshot, nil
}

// Invalidate drops the cached snapshot immediately.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
}
