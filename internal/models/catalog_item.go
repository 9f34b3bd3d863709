package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrItemNameRequired = errors.New("catalog item name is required")
	ErrNegativePrice    = errors.New("public price cannot be negative")
)

// CatalogItem is one study/service offered by the laboratory. The external
// store owns it; everything in memory is a read-only snapshot copy.
type CatalogItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	PublicPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"public_price"`
	Origin       string          `gorm:"type:varchar(100);index" json:"origin"`
	ProcessTime  string          `gorm:"type:varchar(50)" json:"process_time"`
	DeliveryTime string          `gorm:"type:varchar(50)" json:"delivery_time"`
	SampleType   string          `gorm:"type:varchar(100)" json:"sample_type"`
	Temperature  string          `gorm:"type:varchar(50)" json:"temperature"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CatalogItem
func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	i.TrimFields()
	return i.Validate()
}

// BeforeUpdate hook for CatalogItem. Validation happens at the call sites:
// bulk field corrections update through an empty model value.
func (i *CatalogItem) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}

// TrimFields strips edge whitespace from every free-text field before the
// row reaches the store.
func (i *CatalogItem) TrimFields() {
	i.Name = strings.TrimSpace(i.Name)
	i.Origin = strings.TrimSpace(i.Origin)
	i.ProcessTime = strings.TrimSpace(i.ProcessTime)
	i.DeliveryTime = strings.TrimSpace(i.DeliveryTime)
	i.SampleType = strings.TrimSpace(i.SampleType)
	i.Temperature = strings.TrimSpace(i.Temperature)
}

// Validate checks item invariants
func (i *CatalogItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrItemNameRequired
	}
	if i.PublicPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// FieldValue returns the raw value of a cleanup-eligible field by name.
// Unknown fields return ok=false.
func (i *CatalogItem) FieldValue(field string) (string, bool) {
	switch field {
	case FieldOrigin:
		return i.Origin, true
	case FieldSampleType:
		return i.SampleType, true
	case FieldTemperature:
		return i.Temperature, true
	case FieldProcessTime:
		return i.ProcessTime, true
	case FieldDeliveryTime:
		return i.DeliveryTime, true
	default:
		return "", false
	}
}
