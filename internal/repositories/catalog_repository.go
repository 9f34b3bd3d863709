package repositories

import (
	"errors"
	"fmt"

	"labquote/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("catalog item not found")
	ErrUnknownField = errors.New("unknown catalog field")
)

// catalogRepository implements CatalogRepositoryInterface
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &catalogRepository{db: db}
}

// GetAll retrieves every catalog row. Callers build the searchable snapshot
// from the result; this method never filters.
func (r *catalogRepository) GetAll() ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := r.db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return items, nil
}

// GetByID retrieves a catalog item by ID
func (r *catalogRepository) GetByID(id uuid.UUID) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return &item, nil
}

// Create inserts a new catalog item
func (r *catalogRepository) Create(item *models.CatalogItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}
	return nil
}

// Update persists all fields of an existing catalog item
func (r *catalogRepository) Update(item *models.CatalogItem) error {
	item.TrimFields()
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.CatalogItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":          item.Name,
		"public_price":  item.PublicPrice,
		"origin":        item.Origin,
		"process_time":  item.ProcessTime,
		"delivery_time": item.DeliveryTime,
		"sample_type":   item.SampleType,
		"temperature":   item.Temperature,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// columnFor maps an API field name to its database column, rejecting
// anything outside the declared schema so raw input can never reach SQL.
func columnFor(field string) (string, error) {
	if _, ok := models.SchemaForField(field); !ok {
		return "", ErrUnknownField
	}
	// Field names and column names coincide by construction.
	return field, nil
}

// DistinctFieldValues returns the distinct non-empty raw values stored in a
// cleanup-eligible field.
func (r *catalogRepository) DistinctFieldValues(field string) ([]string, error) {
	column, err := columnFor(field)
	if err != nil {
		return nil, err
	}

	var values []string
	if err := r.db.Model(&models.CatalogItem{}).
		Distinct(column).
		Where(column+" <> ''").
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to list distinct values for %s: %w", field, err)
	}
	return values, nil
}

// CountFieldValue counts rows whose field exactly equals value. The match
// is raw, not normalized: it sizes the impact of a correction.
func (r *catalogRepository) CountFieldValue(field, value string) (int64, error) {
	column, err := columnFor(field)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.Model(&models.CatalogItem{}).
		Where(column+" = ?", value).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count value in %s: %w", field, err)
	}
	return count, nil
}

// UpdateFieldValue bulk-rewrites every row where field exactly equals from.
// It returns the number of rows changed.
func (r *catalogRepository) UpdateFieldValue(field, from, to string) (int64, error) {
	column, err := columnFor(field)
	if err != nil {
		return 0, err
	}

	result := r.db.Model(&models.CatalogItem{}).
		Where(column+" = ?", from).
		Update(column, to)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to apply correction on %s: %w", field, result.Error)
	}
	return result.RowsAffected, nil
}
