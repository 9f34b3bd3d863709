package services

import (
	"time"

	"labquote/internal/catalog"
	"labquote/internal/models"
	"labquote/internal/repositories"

	"github.com/google/uuid"
)

// catalogService serves the browsable catalog from a time-bounded snapshot
// cache and funnels writes through the store, invalidating the snapshot on
// success.
type catalogService struct {
	repo    repositories.CatalogRepositoryInterface
	cache   *catalog.SnapshotCache
	ttl     time.Duration
	logger  *QuoteLogger
	metrics MetricsRecorderInterface
}

// NewCatalogService creates a new CatalogServiceInterface instance
func NewCatalogService(
	repo repositories.CatalogRepositoryInterface,
	ttl time.Duration,
	logger *QuoteLogger,
	metrics MetricsRecorderInterface,
) CatalogServiceInterface {
	return &catalogService{
		repo:    repo,
		cache:   catalog.NewSnapshotCache(repo.GetAll),
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// snapshot returns the current catalog snapshot, degrading to an empty one
// when the store is unreachable.
func (s *catalogService) snapshot() *catalog.Snapshot {
	snap, err := s.cache.GetOrRefresh(s.ttl)
	if err != nil {
		s.logger.LogSnapshotRefreshFailed(err.Error())
		s.metrics.IncrementCounter("snapshot_refresh", map[string]string{"status": "failed"})
		return snap
	}
	s.metrics.SetGauge("snapshot_rows", float64(snap.Len()))
	return snap
}

// Browse filters the snapshot by origin tag and then by normalized
// substring search over the study name.
func (s *catalogService) Browse(origin, query string) ([]catalog.Entry, error) {
	start := time.Now()
	snap := s.snapshot()

	entries := catalog.FilterByOrigin(snap.Entries, origin)
	entries = catalog.Search(entries, query)

	s.metrics.IncrementCounter("catalog_search", nil)
	s.logger.LogCatalogSearch(origin, query, len(entries), time.Since(start))

	if entries == nil {
		entries = []catalog.Entry{}
	}
	return entries, nil
}

// Origins lists the distinct origin tags present in the snapshot.
func (s *catalogService) Origins() ([]string, error) {
	return s.snapshot().Origins(), nil
}

// Schema returns the declared catalog field schema.
func (s *catalogService) Schema() []models.FieldSchema {
	return models.CatalogSchema()
}

// GetItem fetches one catalog item straight from the store.
func (s *catalogService) GetItem(id uuid.UUID) (*models.CatalogItem, error) {
	return s.repo.GetByID(id)
}

// CreateItem inserts a study and invalidates the snapshot so the next read
// sees it.
func (s *catalogService) CreateItem(item *models.CatalogItem) error {
	item.TrimFields()
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(item); err != nil {
		return err
	}
	s.cache.Invalidate()
	s.logger.LogSnapshotInvalidated("item_created")
	return nil
}

// UpdateItem persists edits to a study and invalidates the snapshot.
func (s *catalogService) UpdateItem(item *models.CatalogItem) error {
	if err := s.repo.Update(item); err != nil {
		return err
	}
	s.cache.Invalidate()
	s.logger.LogSnapshotInvalidated("item_updated")
	return nil
}

// InvalidateSnapshot drops the cached snapshot. Cleanup corrections call
// this after a successful bulk write.
func (s *catalogService) InvalidateSnapshot() {
	s.cache.Invalidate()
	s.logger.LogSnapshotInvalidated("external_write")
}
