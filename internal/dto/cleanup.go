package dto

import "labquote/internal/models"

// Cleanup Request DTOs

// ApplyCleanupRequest represents the request payload for one bulk correction
type ApplyCleanupRequest struct {
	From string `json:"from" validate:"required,min=1,max=255"`
	To   string `json:"to" validate:"required,min=1,max=255"`
}

// Cleanup Response DTOs

// CleanupFieldsResponse lists the fields eligible for cleanup
type CleanupFieldsResponse struct {
	Fields []string `json:"fields"`
}

// CleanupReportResponse wraps the dirty-value report for one field
type CleanupReportResponse struct {
	Report *models.CleanupReport `json:"report"`
}

// ApplyCleanupResponse reports how many rows a correction rewrote
type ApplyCleanupResponse struct {
	Field    string `json:"field"`
	From     string `json:"from"`
	To       string `json:"to"`
	Affected int64  `json:"affected"`
	Message  string `json:"message"`
}
