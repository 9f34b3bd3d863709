package repositories

import (
	"labquote/internal/models"

	"github.com/google/uuid"
)

// CatalogRepositoryInterface defines store access for catalog items
type CatalogRepositoryInterface interface {
	GetAll() ([]models.CatalogItem, error)
	GetByID(id uuid.UUID) (*models.CatalogItem, error)
	Create(item *models.CatalogItem) error
	Update(item *models.CatalogItem) error
	DistinctFieldValues(field string) ([]string, error)
	CountFieldValue(field, value string) (int64, error)
	UpdateFieldValue(field, from, to string) (int64, error)
}

// QuoteRepositoryInterface defines store access for quotes
type QuoteRepositoryInterface interface {
	Create(quote *models.Quote) error
	GetByID(id uuid.UUID) (*models.Quote, error)
	ListRecent(limit int) ([]models.Quote, error)
	Save(quote *models.Quote) error
	UpdateStatus(id uuid.UUID, status string) error
	Delete(id uuid.UUID) error
}
