package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quote lifecycle states. A quote starts Pending; the only legal
// transitions are Pending -> Attended and Pending -> Cancelled.
const (
	QuoteStatusPending   = "Pendiente"
	QuoteStatusAttended  = "Atendido"
	QuoteStatusCancelled = "Cancelada"
)

var (
	ErrPatientNameRequired = errors.New("patient name is required")
	ErrInvalidQuoteStatus  = errors.New("invalid quote status")
	ErrIllegalTransition   = errors.New("illegal quote status transition")
	ErrDuplicateCartLine   = errors.New("cart lines must have unique identifiers")
)

// Quote is a persisted quotation: a patient, an ordered line sequence, the
// tier applied and the amounts computed from both. The store owns it; on
// concurrent edits the last write wins.
type Quote struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PatientName string          `gorm:"type:varchar(255);not null;index" json:"patient_name"`
	Items       CartLines       `gorm:"type:text" json:"items"`
	TierLabel   string          `gorm:"type:varchar(50);not null" json:"tier_label"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Pendiente';index" json:"status"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// AllQuoteStatuses returns the valid lifecycle states.
func AllQuoteStatuses() []string {
	return []string{QuoteStatusPending, QuoteStatusAttended, QuoteStatusCancelled}
}

// IsValidQuoteStatus checks if a status string is a known lifecycle state.
func IsValidQuoteStatus(status string) bool {
	for _, s := range AllQuoteStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition reports whether a status change is legal. Pending may move
// to Attended or Cancelled; terminal states never move again. A no-op
// transition to the current state is allowed.
func CanTransition(from, to string) bool {
	if !IsValidQuoteStatus(from) || !IsValidQuoteStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return from == QuoteStatusPending
}

// BeforeCreate hook for Quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = QuoteStatusPending
	}

	now := time.Now()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = now
	}

	return q.Validate()
}

// BeforeUpdate hook for Quote
func (q *Quote) BeforeUpdate(tx *gorm.DB) error {
	q.UpdatedAt = time.Now()
	return nil
}

// Validate checks quote invariants before persistence.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.PatientName) == "" {
		return ErrPatientNameRequired
	}
	if !IsValidQuoteStatus(q.Status) {
		return ErrInvalidQuoteStatus
	}

	seen := make(map[string]struct{}, len(q.Items))
	for _, l := range q.Items {
		key := l.Key()
		if _, dup := seen[key]; dup {
			return ErrDuplicateCartLine
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Recompute replaces the line sequence and tier wholesale and re-derives
// the amounts from the new state. The previous total is discarded, never
// diffed.
func (q *Quote) Recompute(lines CartLines, tier DiscountTier) {
	q.Items = lines
	q.TierLabel = tier.Label
	totals := ComputeTotals(lines, tier)
	q.Subtotal = totals.Subtotal
	q.Discount = totals.Discount
	q.Total = totals.Total
}
