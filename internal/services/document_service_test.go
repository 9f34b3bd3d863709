package services

import (
	"log/slog"
	"testing"

	"labquote/internal/config"
	"labquote/internal/database"
	"labquote/internal/document"
	"labquote/internal/models"
	"labquote/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	quotes  QuoteServiceInterface
	service DocumentServiceInterface
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewQuoteRepository(s.db.DB)
	s.quotes = NewQuoteService(repo, 50, NewQuoteLogger(slog.Default()), NewNoopMetrics())

	renderer := document.NewRenderer(config.LabConfig{
		Name:         "Laboratorio de Análisis Clínicos Santa Fe",
		Address:      "Av. Principal 123, Col. Centro",
		Contact:      "Tel. 555-0100",
		LegalNotice:  "Precios sujetos a cambio sin previo aviso.",
		ValidityDays: 30,
	})
	s.service = NewDocumentService(repo, renderer, s.quotes)
}

func (s *DocumentServiceTestSuite) lines() []models.CartLine {
	return []models.CartLine{
		{Name: "Biometría Hemática", UnitPrice: decimal.NewFromFloat(180.00)},
		{Name: "Glucosa", UnitPrice: decimal.NewFromFloat(50.00)},
	}
}

func (s *DocumentServiceTestSuite) TestRenderQuote() {
	quote, err := s.quotes.SaveQuote("Ana Ruiz", s.lines(), "INAPAM (10%)")
	s.Require().NoError(err)

	doc, err := s.service.RenderQuote(quote.ID)
	s.Require().NoError(err)

	text := string(doc)
	s.Contains(text, "Laboratorio de Análisis Clínicos Santa Fe")
	s.Contains(text, "Ana Ruiz")
	s.Contains(text, "Biometría Hemática")
	s.Contains(text, "INAPAM (10%)")
	s.Contains(text, "$230.00")
	s.Contains(text, "$23.00")
	s.Contains(text, "$207.00")
	s.Contains(text, "Vigencia: 30 dias")
}

func (s *DocumentServiceTestSuite) TestRenderQuote_NotFound() {
	_, err := s.service.RenderQuote(uuid.New())
	s.ErrorIs(err, repositories.ErrQuoteNotFound)
}

func (s *DocumentServiceTestSuite) TestRenderQuote_LegacyTierLabel() {
	quote, err := s.quotes.SaveQuote("Ana Ruiz", s.lines(), "Público General")
	s.Require().NoError(err)

	// Simulate a quote saved under a tariff label that no longer exists.
	err = s.db.Model(&models.Quote{}).
		Where("id = ?", quote.ID).
		Update("tier_label", "Aseguradora (12%)").Error
	s.Require().NoError(err)

	doc, err := s.service.RenderQuote(quote.ID)
	s.Require().NoError(err)
	s.Contains(string(doc), "Aseguradora (12%)")
}

func (s *DocumentServiceTestSuite) TestRenderPreview() {
	doc, totals, err := s.service.RenderPreview("", s.lines(), "Promo (20%)")
	s.Require().NoError(err)

	s.Equal("230", totals.Subtotal.String())
	s.Equal("46", totals.Discount.String())
	s.Equal("184", totals.Total.String())

	text := string(doc)
	s.Contains(text, "Público", "empty patient falls back to the generic label")
	s.Contains(text, "$184.00")
}

func (s *DocumentServiceTestSuite) TestRenderPreview_UnknownTier() {
	_, _, err := s.service.RenderPreview("Ana Ruiz", s.lines(), "Inexistente")
	s.ErrorIs(err, models.ErrUnknownTier)
}
