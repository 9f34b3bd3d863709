package dto

import (
	"labquote/internal/catalog"
	"labquote/internal/models"
)

// Catalog Request DTOs

// CreateCatalogItemRequest represents the request payload for creating a catalog item
type CreateCatalogItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	PublicPrice  string `json:"public_price" validate:"required,money_amount"`
	Origin       string `json:"origin" validate:"omitempty,max=100"`
	ProcessTime  string `json:"process_time" validate:"omitempty,max=100"`
	DeliveryTime string `json:"delivery_time" validate:"omitempty,max=100"`
	SampleType   string `json:"sample_type" validate:"omitempty,max=100"`
	Temperature  string `json:"temperature" validate:"omitempty,max=100"`
}

// UpdateCatalogItemRequest represents the request payload for editing a catalog item.
// All fields are sent; the row is replaced wholesale.
type UpdateCatalogItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	PublicPrice  string `json:"public_price" validate:"required,money_amount"`
	Origin       string `json:"origin" validate:"omitempty,max=100"`
	ProcessTime  string `json:"process_time" validate:"omitempty,max=100"`
	DeliveryTime string `json:"delivery_time" validate:"omitempty,max=100"`
	SampleType   string `json:"sample_type" validate:"omitempty,max=100"`
	Temperature  string `json:"temperature" validate:"omitempty,max=100"`
}

// Catalog Response DTOs

// CatalogBrowseResponse represents the filtered catalog listing
type CatalogBrowseResponse struct {
	Items  []catalog.Entry `json:"items"`
	Total  int             `json:"total"`
	Origin string          `json:"origin"`
	Query  string          `json:"query"`
}

// CatalogOriginsResponse lists the distinct origin tags plus the "all" sentinel
type CatalogOriginsResponse struct {
	Origins []string `json:"origins"`
}

// CatalogSchemaResponse exposes the declared field schema for form building
type CatalogSchemaResponse struct {
	Fields []models.FieldSchema `json:"fields"`
}

// CatalogItemResponse represents a single catalog item in API responses
type CatalogItemResponse struct {
	Item    *models.CatalogItem `json:"item"`
	Message string              `json:"message,omitempty"`
}
