package repositories

import (
	"errors"
	"fmt"

	"labquote/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote not found")

// quoteRepository implements QuoteRepositoryInterface
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) QuoteRepositoryInterface {
	return &quoteRepository{db: db}
}

// Create inserts a new quote
func (r *quoteRepository) Create(quote *models.Quote) error {
	if err := r.db.Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetByID retrieves a quote by ID
func (r *quoteRepository) GetByID(id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.Where("id = ?", id).First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// ListRecent retrieves the newest quotes first, capped at limit.
func (r *quoteRepository) ListRecent(limit int) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// Save overwrites a quote wholesale. Concurrent editors race here and the
// last write wins; there is no version token.
func (r *quoteRepository) Save(quote *models.Quote) error {
	result := r.db.Model(&models.Quote{}).Where("id = ?", quote.ID).Updates(map[string]interface{}{
		"patient_name": quote.PatientName,
		"items":        quote.Items,
		"tier_label":   quote.TierLabel,
		"subtotal":     quote.Subtotal,
		"discount":     quote.Discount,
		"total":        quote.Total,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to save quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

// UpdateStatus sets the lifecycle state of a quote.
func (r *quoteRepository) UpdateStatus(id uuid.UUID, status string) error {
	result := r.db.Model(&models.Quote{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update quote status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

// Delete removes a quote permanently
func (r *quoteRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Quote{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}
