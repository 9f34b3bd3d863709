package services

import (
	"errors"
	"strings"

	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/textnorm"
)

var (
	ErrFieldNotCleanable = errors.New("field has no official value list")
	ErrEmptyCorrection   = errors.New("correction values cannot be empty")
	ErrNothingToApply    = errors.New("no rows hold the source value")
)

// cleanupService surfaces catalog field values that are spelling or
// formatting variants of the official vocabulary and applies bulk
// corrections. Only case, accent and edge-whitespace differences count as
// clean; any other difference (synonyms, missing punctuation) is flagged.
type cleanupService struct {
	repo    repositories.CatalogRepositoryInterface
	catalog CatalogServiceInterface
	logger  *QuoteLogger
	metrics MetricsRecorderInterface
}

// NewCleanupService creates a new CleanupServiceInterface instance
func NewCleanupService(
	repo repositories.CatalogRepositoryInterface,
	catalogSvc CatalogServiceInterface,
	logger *QuoteLogger,
	metrics MetricsRecorderInterface,
) CleanupServiceInterface {
	return &cleanupService{
		repo:    repo,
		catalog: catalogSvc,
		logger:  logger,
		metrics: metrics,
	}
}

// Fields lists the enum fields eligible for cleanup.
func (s *cleanupService) Fields() []string {
	return models.CleanupFields()
}

// Report classifies every distinct raw value of a field against its
// official list and sizes each dirty value by exact-match row count.
func (s *cleanupService) Report(field string) (*models.CleanupReport, error) {
	official, ok := models.OfficialOptions(field)
	if !ok {
		return nil, ErrFieldNotCleanable
	}

	rawValues, err := s.repo.DistinctFieldValues(field)
	if err != nil {
		return nil, err
	}

	report := &models.CleanupReport{
		Field:       field,
		Official:    official,
		DirtyValues: []models.DirtyValue{},
	}

	for _, raw := range rawValues {
		if isClean(raw, official) {
			continue
		}

		count, err := s.repo.CountFieldValue(field, raw)
		if err != nil {
			return nil, err
		}

		report.DirtyValues = append(report.DirtyValues, models.DirtyValue{
			Value:      raw,
			Count:      int(count),
			Suggestion: suggest(raw, official),
		})
	}

	report.Clean = len(report.DirtyValues) == 0
	return report, nil
}

// Apply bulk-rewrites every row where field exactly equals from, then
// invalidates the catalog snapshot so the next read sees the correction.
func (s *cleanupService) Apply(field, from, to string) (int64, error) {
	if _, ok := models.OfficialOptions(field); !ok {
		return 0, ErrFieldNotCleanable
	}
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return 0, ErrEmptyCorrection
	}

	affected, err := s.repo.UpdateFieldValue(field, from, to)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrNothingToApply
	}

	s.catalog.InvalidateSnapshot()
	s.logger.LogCleanupApplied(field, from, to, affected)
	s.metrics.IncrementCounter("cleanup_applied", map[string]string{"field": field})
	return affected, nil
}

// isClean reports whether raw normalize-matches some official entry.
func isClean(raw string, official []string) bool {
	for _, o := range official {
		if textnorm.Equal(raw, o) {
			return true
		}
	}
	return false
}

// suggest returns the first official entry whose normalized form equals the
// raw value's, or "" when the value is genuinely novel.
func suggest(raw string, official []string) string {
	for _, o := range official {
		if textnorm.Equal(raw, o) {
			return o
		}
	}
	return ""
}
