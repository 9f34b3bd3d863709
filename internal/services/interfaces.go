package services

import (
	"time"

	"labquote/internal/catalog"
	"labquote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogServiceInterface defines catalog browsing and maintenance
type CatalogServiceInterface interface {
	Browse(origin, query string) ([]catalog.Entry, error)
	Origins() ([]string, error)
	Schema() []models.FieldSchema
	GetItem(id uuid.UUID) (*models.CatalogItem, error)
	CreateItem(item *models.CatalogItem) error
	UpdateItem(item *models.CatalogItem) error
	InvalidateSnapshot()
}

// QuoteServiceInterface defines cart computation and quote lifecycle operations
type QuoteServiceInterface interface {
	AssembleCart(lines []models.CartLine) *models.Cart
	Compute(cart *models.Cart, tierLabel string) (models.Totals, models.DiscountTier, error)
	SaveQuote(patientName string, lines []models.CartLine, tierLabel string) (*models.Quote, error)
	GetQuote(id uuid.UUID) (*models.Quote, error)
	ListHistory(limit int, patientQuery string) ([]models.Quote, error)
	UpdateStatus(id uuid.UUID, status string) (*models.Quote, error)
	ReplaceAndRecompute(id uuid.UUID, lines []models.CartLine, tierLabel string) (*models.Quote, error)
	DeleteQuote(id uuid.UUID) error
}

// CleanupServiceInterface defines catalog data-quality operations
type CleanupServiceInterface interface {
	Fields() []string
	Report(field string) (*models.CleanupReport, error)
	Apply(field, from, to string) (int64, error)
}

// DocumentServiceInterface regenerates quotation documents
type DocumentServiceInterface interface {
	RenderQuote(id uuid.UUID) ([]byte, error)
	RenderPreview(patientName string, lines []models.CartLine, tierLabel string) ([]byte, models.Totals, error)
}

// MetricsRecorderInterface abstracts metrics recording for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(operation string, duration time.Duration)
	SetGauge(name string, value float64)
	ObserveQuoteTotal(total decimal.Decimal)
}
