package services

import (
	"strings"
	"time"

	"labquote/internal/document"
	"labquote/internal/models"
	"labquote/internal/repositories"

	"github.com/google/uuid"
)

// documentService regenerates quotation documents, either from a stored
// quote (keeping its original generation date) or from an unsaved cart.
type documentService struct {
	repo     repositories.QuoteRepositoryInterface
	renderer *document.Renderer
	quotes   QuoteServiceInterface
}

// NewDocumentService creates a new DocumentServiceInterface instance
func NewDocumentService(
	repo repositories.QuoteRepositoryInterface,
	renderer *document.Renderer,
	quotes QuoteServiceInterface,
) DocumentServiceInterface {
	return &documentService{
		repo:     repo,
		renderer: renderer,
		quotes:   quotes,
	}
}

// RenderQuote regenerates the document for a stored quote. The document
// date is the quote's creation time, so the validity window of a reprint
// matches the original print.
func (s *documentService) RenderQuote(id uuid.UUID) ([]byte, error) {
	quote, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	tier, err := models.TierByLabel(quote.TierLabel)
	if err != nil {
		// Stored tier labels predate the current tariff list; render with
		// the stored amounts under a zero-rate placeholder tier.
		tier = models.DiscountTier{Label: quote.TierLabel}
	}

	return s.renderer.Render(document.Input{
		PatientName: quote.PatientName,
		Lines:       quote.Items,
		Totals: models.Totals{
			Subtotal: quote.Subtotal,
			Discount: quote.Discount,
			Total:    quote.Total,
		},
		TierLabel:   tier.Label,
		GeneratedAt: quote.CreatedAt,
	}), nil
}

// RenderPreview computes totals for an unsaved cart and renders its
// document dated now. An empty patient name is allowed here; the document
// falls back to a generic label.
func (s *documentService) RenderPreview(patientName string, lines []models.CartLine, tierLabel string) ([]byte, models.Totals, error) {
	cart := s.quotes.AssembleCart(lines)
	totals, tier, err := s.quotes.Compute(cart, tierLabel)
	if err != nil {
		return nil, models.Totals{}, err
	}

	doc := s.renderer.Render(document.Input{
		PatientName: strings.TrimSpace(patientName),
		Lines:       cart.Lines,
		Totals:      totals,
		TierLabel:   tier.Label,
		GeneratedAt: time.Now(),
	})
	return doc, totals, nil
}
