package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// QuoteLogger provides structured event logging for quote and catalog
// operations.
type QuoteLogger struct {
	logger *slog.Logger
}

// NewQuoteLogger creates a new quote logger
func NewQuoteLogger(logger *slog.Logger) *QuoteLogger {
	return &QuoteLogger{logger: logger}
}

func (ql *QuoteLogger) LogQuoteSaved(quoteID uuid.UUID, lineCount int, tierLabel string) {
	ql.logger.Info("quote saved",
		slog.String("event_type", "quote_saved"),
		slog.String("quote_id", quoteID.String()),
		slog.Int("line_count", lineCount),
		slog.String("tier", tierLabel),
	)
}

func (ql *QuoteLogger) LogQuoteSaveFailed(errorMsg string) {
	ql.logger.Warn("quote save failed",
		slog.String("event_type", "quote_save_failed"),
		slog.String("error", errorMsg),
	)
}

func (ql *QuoteLogger) LogQuoteStatusChanged(quoteID uuid.UUID, from, to string) {
	ql.logger.Info("quote status changed",
		slog.String("event_type", "quote_status_changed"),
		slog.String("quote_id", quoteID.String()),
		slog.String("from", from),
		slog.String("to", to),
	)
}

func (ql *QuoteLogger) LogQuoteEdited(quoteID uuid.UUID, lineCount int, tierLabel string) {
	ql.logger.Info("quote edited",
		slog.String("event_type", "quote_edited"),
		slog.String("quote_id", quoteID.String()),
		slog.Int("line_count", lineCount),
		slog.String("tier", tierLabel),
	)
}

func (ql *QuoteLogger) LogQuoteDeleted(quoteID uuid.UUID) {
	ql.logger.Info("quote deleted",
		slog.String("event_type", "quote_deleted"),
		slog.String("quote_id", quoteID.String()),
	)
}

func (ql *QuoteLogger) LogCatalogSearch(origin, query string, results int, duration time.Duration) {
	ql.logger.Debug("catalog search",
		slog.String("event_type", "catalog_search"),
		slog.String("origin", origin),
		slog.String("query", query),
		slog.Int("results", results),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

func (ql *QuoteLogger) LogSnapshotRefreshFailed(errorMsg string) {
	ql.logger.Error("catalog snapshot refresh failed, serving empty catalog",
		slog.String("event_type", "snapshot_refresh_failed"),
		slog.String("error", errorMsg),
	)
}

func (ql *QuoteLogger) LogSnapshotInvalidated(reason string) {
	ql.logger.Debug("catalog snapshot invalidated",
		slog.String("event_type", "snapshot_invalidated"),
		slog.String("reason", reason),
	)
}

func (ql *QuoteLogger) LogCleanupApplied(field, from, to string, affected int64) {
	ql.logger.Info("cleanup correction applied",
		slog.String("event_type", "cleanup_applied"),
		slog.String("field", field),
		slog.String("from", from),
		slog.String("to", to),
		slog.Int64("rows_affected", affected),
	)
}
