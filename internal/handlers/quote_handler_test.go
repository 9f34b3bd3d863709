package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"labquote/internal/config"
	"labquote/internal/database"
	"labquote/internal/document"
	"labquote/internal/dto"
	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	db           *database.DB
	echo         *echo.Echo
	quoteService services.QuoteServiceInterface
	handler      *QuoteHandler
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewQuoteRepository(s.db.DB)
	logger := services.NewQuoteLogger(slog.Default())
	metrics := services.NewNoopMetrics()
	s.quoteService = services.NewQuoteService(repo, 50, logger, metrics)

	renderer := document.NewRenderer(config.LabConfig{
		Name:         "Laboratorio de Análisis Clínicos Santa Fe",
		LegalNotice:  "Precios sujetos a cambio sin previo aviso.",
		ValidityDays: 30,
	})
	documentService := services.NewDocumentService(repo, renderer, s.quoteService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.handler = NewQuoteHandler(s.quoteService, documentService)
}

func (s *QuoteHandlerTestSuite) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *QuoteHandlerTestSuite) savedQuote() *models.Quote {
	quote, err := s.quoteService.SaveQuote("Ana Ruiz", []models.CartLine{
		{Name: "Glucosa", UnitPrice: decimal.NewFromInt(50)},
		{Name: "Urea", UnitPrice: decimal.NewFromInt(150)},
	}, "Público General")
	s.Require().NoError(err)
	return quote
}

func (s *QuoteHandlerTestSuite) TestSaveQuote() {
	body := `{
		"patient_name": "María Pérez",
		"tier_label": "INAPAM (10%)",
		"lines": [
			{"name": "Glucosa", "unit_price": "50.00"},
			{"name": "Biometría Hemática", "unit_price": "180.00"}
		]
	}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes", body)
	s.Require().NoError(s.handler.SaveQuote(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.QuoteResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().NotNil(response.Quote)
	s.Equal("María Pérez", response.Quote.PatientName)
	s.Equal(models.QuoteStatusPending, response.Quote.Status)
	s.Equal("230", response.Quote.Subtotal.String())
	s.Equal("23", response.Quote.Discount.String())
	s.Equal("207", response.Quote.Total.String())
}

func (s *QuoteHandlerTestSuite) TestSaveQuote_UnknownTier() {
	body := `{"patient_name": "Ana", "tier_label": "Mayoreo (50%)", "lines": []}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes", body)
	s.Require().NoError(s.handler.SaveQuote(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *QuoteHandlerTestSuite) TestSaveQuote_MissingPatient() {
	body := `{"tier_label": "Público General", "lines": []}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes", body)
	s.Require().NoError(s.handler.SaveQuote(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *QuoteHandlerTestSuite) TestSaveQuote_BadPrice() {
	body := `{"patient_name": "Ana", "tier_label": "Público General",
		"lines": [{"name": "Glucosa", "unit_price": "abc"}]}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes", body)
	s.Require().NoError(s.handler.SaveQuote(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *QuoteHandlerTestSuite) TestListQuotes_StoreFailureKeepsMessage() {
	s.Require().NoError(s.db.Migrator().DropTable(&models.Quote{}))

	c, rec := s.request(http.MethodGet, "/api/v1/quotes", "")
	s.Require().NoError(s.handler.ListQuotes(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_002", response.Error.Code)
	s.Require().NotEmpty(response.Error.Details)
	s.Contains(response.Error.Details[0], "failed to list quotes")
}

// duplicateLineQuoteService forces the store-side duplicate check to fire,
// which the idempotent cart assembly otherwise prevents.
type duplicateLineQuoteService struct {
	services.QuoteServiceInterface
}

func (duplicateLineQuoteService) SaveQuote(string, []models.CartLine, string) (*models.Quote, error) {
	return nil, models.ErrDuplicateCartLine
}

func (s *QuoteHandlerTestSuite) TestSaveQuote_DuplicateLineRejected() {
	handler := NewQuoteHandler(duplicateLineQuoteService{}, nil)

	body := `{"patient_name": "Ana", "tier_label": "Público General", "lines": []}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes", body)
	s.Require().NoError(handler.SaveQuote(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("QUOTE_006", response.Error.Code)
}

func (s *QuoteHandlerTestSuite) TestListQuotes() {
	s.savedQuote()
	s.savedQuote()

	c, rec := s.request(http.MethodGet, "/api/v1/quotes?limit=10", "")
	s.Require().NoError(s.handler.ListQuotes(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.QuoteListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	s.Equal(10, response.Limit)
}

func (s *QuoteHandlerTestSuite) TestGetQuote() {
	quote := s.savedQuote()

	c, rec := s.request(http.MethodGet, "/api/v1/quotes/"+quote.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.GetQuote(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.QuoteResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(quote.ID, response.Quote.ID)
	s.Len(response.Quote.Items, 2)
}

func (s *QuoteHandlerTestSuite) TestGetQuote_NotFound() {
	id := uuid.NewString()
	c, rec := s.request(http.MethodGet, "/api/v1/quotes/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	s.Require().NoError(s.handler.GetQuote(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("QUOTE_001", response.Error.Code)
}

func (s *QuoteHandlerTestSuite) TestUpdateStatus() {
	quote := s.savedQuote()

	c, rec := s.request(http.MethodPut, "/api/v1/quotes/"+quote.ID.String()+"/status", `{"status": "Atendido"}`)
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.UpdateStatus(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.QuoteResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.QuoteStatusAttended, response.Quote.Status)
}

func (s *QuoteHandlerTestSuite) TestUpdateStatus_IllegalTransition() {
	quote := s.savedQuote()
	_, err := s.quoteService.UpdateStatus(quote.ID, models.QuoteStatusCancelled)
	s.Require().NoError(err)

	c, rec := s.request(http.MethodPut, "/api/v1/quotes/"+quote.ID.String()+"/status", `{"status": "Atendido"}`)
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.UpdateStatus(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("QUOTE_004", response.Error.Code)
}

func (s *QuoteHandlerTestSuite) TestUpdateStatus_UnknownStatus() {
	quote := s.savedQuote()

	c, rec := s.request(http.MethodPut, "/api/v1/quotes/"+quote.ID.String()+"/status", `{"status": "Archivada"}`)
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.UpdateStatus(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *QuoteHandlerTestSuite) TestUpdateQuote() {
	quote := s.savedQuote()

	body := `{
		"tier_label": "Promo (20%)",
		"lines": [{"name": "Perfil Tiroideo", "unit_price": "450.00"}]
	}`
	c, rec := s.request(http.MethodPut, "/api/v1/quotes/"+quote.ID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.UpdateQuote(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.QuoteResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Quote.Items, 1)
	s.Equal("450", response.Quote.Subtotal.String())
	s.Equal("90", response.Quote.Discount.String())
	s.Equal("360", response.Quote.Total.String())
}

func (s *QuoteHandlerTestSuite) TestDeleteQuote() {
	quote := s.savedQuote()

	c, rec := s.request(http.MethodDelete, "/api/v1/quotes/"+quote.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.DeleteQuote(c))
	s.Equal(http.StatusOK, rec.Code)

	_, err := s.quoteService.GetQuote(quote.ID)
	s.ErrorIs(err, repositories.ErrQuoteNotFound)
}

func (s *QuoteHandlerTestSuite) TestGetDocument() {
	quote := s.savedQuote()

	c, rec := s.request(http.MethodGet, "/api/v1/quotes/"+quote.ID.String()+"/document", "")
	c.SetParamNames("id")
	c.SetParamValues(quote.ID.String())

	s.Require().NoError(s.handler.GetDocument(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/plain")
	s.Contains(rec.Body.String(), "Ana Ruiz")
	s.Contains(rec.Body.String(), "Vigencia: 30 dias")
}

func (s *QuoteHandlerTestSuite) TestPreviewQuote() {
	body := `{
		"tier_label": "Convenio (15%)",
		"lines": [
			{"name": "Glucosa", "unit_price": "50.00"},
			{"name": "Urea", "unit_price": "150.00"}
		]
	}`
	c, rec := s.request(http.MethodPost, "/api/v1/quotes/preview", body)
	s.Require().NoError(s.handler.PreviewQuote(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.QuotePreviewResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("200", response.Subtotal.String())
	s.Equal("30", response.Discount.String())
	s.Equal("170", response.Total.String())
	s.Contains(response.Document, "Público")

	quotes, err := s.quoteService.ListHistory(50, "")
	s.Require().NoError(err)
	s.Empty(quotes, "preview must not persist anything")
}

func (s *QuoteHandlerTestSuite) TestListTiers() {
	c, rec := s.request(http.MethodGet, "/api/v1/quotes/tiers", "")
	s.Require().NoError(s.handler.ListTiers(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TierListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Tiers, 5)
	s.Equal("Público General", response.Tiers[0].Label)
}
