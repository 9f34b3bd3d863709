package dto

import (
	"labquote/internal/models"

	"github.com/shopspring/decimal"
)

// Quote Request DTOs

// QuoteLineRequest is one study line inside a save, edit, or preview payload.
// ItemID is optional; lines typed in by hand carry only a name and price.
type QuoteLineRequest struct {
	ItemID    string `json:"item_id" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	UnitPrice string `json:"unit_price" validate:"required,money_amount"`
}

// SaveQuoteRequest represents the request payload for persisting a quotation
type SaveQuoteRequest struct {
	PatientName string             `json:"patient_name" validate:"required,min=1,max=255"`
	TierLabel   string             `json:"tier_label" validate:"required,discount_tier"`
	Lines       []QuoteLineRequest `json:"lines" validate:"dive"`
}

// UpdateQuoteRequest replaces a stored quote's lines and tier wholesale
type UpdateQuoteRequest struct {
	TierLabel string             `json:"tier_label" validate:"required,discount_tier"`
	Lines     []QuoteLineRequest `json:"lines" validate:"dive"`
}

// UpdateQuoteStatusRequest represents the request payload for a status change
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,quote_status"`
}

// PreviewQuoteRequest computes totals and renders a document without saving
type PreviewQuoteRequest struct {
	PatientName string             `json:"patient_name" validate:"omitempty,max=255"`
	TierLabel   string             `json:"tier_label" validate:"required,discount_tier"`
	Lines       []QuoteLineRequest `json:"lines" validate:"dive"`
}

// Quote Response DTOs

// QuoteResponse represents a single quote in API responses
type QuoteResponse struct {
	Quote   *models.Quote `json:"quote"`
	Message string        `json:"message,omitempty"`
}

// QuoteListResponse represents the recent-quote history
type QuoteListResponse struct {
	Quotes []models.Quote `json:"quotes"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
}

// QuotePreviewResponse carries the computed totals and the rendered document
type QuotePreviewResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Document string          `json:"document"`
}

// TierListResponse lists the fixed discount tiers in display order
type TierListResponse struct {
	Tiers []models.DiscountTier `json:"tiers"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
