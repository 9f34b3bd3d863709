package services

import (
	"strings"
	"time"

	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/textnorm"

	"github.com/google/uuid"
)

// quoteService owns cart computation and the quote lifecycle. Carts are
// session state owned by the caller; the service only ever sees the line
// sequence being saved or previewed.
type quoteService struct {
	repo         repositories.QuoteRepositoryInterface
	historyLimit int
	logger       *QuoteLogger
	metrics      MetricsRecorderInterface
}

// NewQuoteService creates a new QuoteServiceInterface instance
func NewQuoteService(
	repo repositories.QuoteRepositoryInterface,
	historyLimit int,
	logger *QuoteLogger,
	metrics MetricsRecorderInterface,
) QuoteServiceInterface {
	return &quoteService{
		repo:         repo,
		historyLimit: historyLimit,
		logger:       logger,
		metrics:      metrics,
	}
}

// AssembleCart builds a cart from a raw line sequence through the
// idempotent add, so duplicate identifiers collapse to the first occurrence
// and order is preserved.
func (s *quoteService) AssembleCart(lines []models.CartLine) *models.Cart {
	cart := models.NewCart()
	for _, l := range lines {
		cart.AddLine(l)
	}
	return cart
}

// Compute resolves the tier and derives the totals for a cart.
func (s *quoteService) Compute(cart *models.Cart, tierLabel string) (models.Totals, models.DiscountTier, error) {
	tier, err := models.TierByLabel(tierLabel)
	if err != nil {
		return models.Totals{}, models.DiscountTier{}, err
	}
	return models.ComputeTotals(cart.Lines, tier), tier, nil
}

// SaveQuote validates, computes, and persists a new quote. Validation runs
// before any store call; an empty cart is allowed.
func (s *quoteService) SaveQuote(patientName string, lines []models.CartLine, tierLabel string) (*models.Quote, error) {
	start := time.Now()

	if strings.TrimSpace(patientName) == "" {
		return nil, models.ErrPatientNameRequired
	}
	tier, err := models.TierByLabel(tierLabel)
	if err != nil {
		return nil, err
	}

	cart := s.AssembleCart(lines)
	quote := &models.Quote{
		PatientName: strings.TrimSpace(patientName),
		Status:      models.QuoteStatusPending,
	}
	quote.Recompute(cart.Lines, tier)

	if err := s.repo.Create(quote); err != nil {
		s.logger.LogQuoteSaveFailed(err.Error())
		s.metrics.IncrementCounter("quote_saved", map[string]string{"status": "failed"})
		return nil, err
	}

	s.logger.LogQuoteSaved(quote.ID, cart.Len(), tier.Label)
	s.metrics.IncrementCounter("quote_saved", map[string]string{"status": "success"})
	s.metrics.ObserveQuoteTotal(quote.Total)
	s.metrics.RecordDuration("quote_save", time.Since(start))
	return quote, nil
}

// GetQuote fetches one quote by id.
func (s *quoteService) GetQuote(id uuid.UUID) (*models.Quote, error) {
	return s.repo.GetByID(id)
}

// ListHistory returns the newest quotes, optionally filtered by a
// normalize-matched patient name substring. The store is asked for at most
// the configured history window; the patient filter runs in memory over it.
func (s *quoteService) ListHistory(limit int, patientQuery string) ([]models.Quote, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	quotes, err := s.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	if q := textnorm.Normalize(patientQuery); q != "" {
		filtered := quotes[:0]
		for _, quote := range quotes {
			if strings.Contains(textnorm.Normalize(quote.PatientName), q) {
				filtered = append(filtered, quote)
			}
		}
		quotes = filtered
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	return quotes, nil
}

// UpdateStatus applies a lifecycle transition. Only moves out of Pending
// are legal; anything else is rejected before the store is touched.
func (s *quoteService) UpdateStatus(id uuid.UUID, status string) (*models.Quote, error) {
	if !models.IsValidQuoteStatus(status) {
		return nil, models.ErrInvalidQuoteStatus
	}

	quote, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(quote.Status, status) {
		return nil, models.ErrIllegalTransition
	}
	if quote.Status == status {
		return quote, nil
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	s.logger.LogQuoteStatusChanged(id, quote.Status, status)
	s.metrics.IncrementCounter("quote_status_change", map[string]string{"to": status})
	quote.Status = status
	return quote, nil
}

// ReplaceAndRecompute overwrites a persisted quote's line sequence and tier
// wholesale, re-deriving the amounts from the new state. The stored totals
// are discarded, not diffed.
func (s *quoteService) ReplaceAndRecompute(id uuid.UUID, lines []models.CartLine, tierLabel string) (*models.Quote, error) {
	tier, err := models.TierByLabel(tierLabel)
	if err != nil {
		return nil, err
	}

	quote, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	cart := s.AssembleCart(lines)
	quote.Recompute(cart.Lines, tier)

	if err := s.repo.Save(quote); err != nil {
		return nil, err
	}

	s.logger.LogQuoteEdited(id, cart.Len(), tier.Label)
	s.metrics.IncrementCounter("quote_edited", nil)
	return quote, nil
}

// DeleteQuote removes a quote permanently.
func (s *quoteService) DeleteQuote(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.LogQuoteDeleted(id)
	s.metrics.IncrementCounter("quote_deleted", nil)
	return nil
}
