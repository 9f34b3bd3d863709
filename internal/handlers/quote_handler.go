package handlers

import (
	"errors"
	"net/http"

	"labquote/internal/dto"
	apierrors "labquote/internal/errors"
	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// QuoteHandler handles quotation-related HTTP requests
type QuoteHandler struct {
	quoteService    services.QuoteServiceInterface
	documentService services.DocumentServiceInterface
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService services.QuoteServiceInterface, documentService services.DocumentServiceInterface) *QuoteHandler {
	return &QuoteHandler{
		quoteService:    quoteService,
		documentService: documentService,
	}
}

// SaveQuote persists a new quotation
// @Summary Save a quotation
// @Description Validate, compute totals, and persist a quotation in Pendiente status
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.SaveQuoteRequest true "Patient, cart lines, and tier"
// @Success 201 {object} dto.QuoteResponse "Quote saved"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 400 {object} errors.ErrorResponse "QUOTE_002 - Missing patient name"
// @Failure 422 {object} errors.ErrorResponse "QUOTE_006 - Duplicate cart line identifiers"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes [post]
func (h *QuoteHandler) SaveQuote(c echo.Context) error {
	var req dto.SaveQuoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	lines, err := parseCartLines(req.Lines)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	quote, err := h.quoteService.SaveQuote(req.PatientName, lines, req.TierLabel)
	if err != nil {
		if errors.Is(err, models.ErrPatientNameRequired) {
			return SendError(c, apierrors.QuoteMissingPatient)
		}
		if errors.Is(err, models.ErrUnknownTier) {
			return SendError(c, apierrors.ValidationInvalidTier)
		}
		if errors.Is(err, models.ErrDuplicateCartLine) {
			return SendError(c, apierrors.QuoteDuplicateLine)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.QuoteResponse{
		Quote:   quote,
		Message: "Quote saved successfully",
	})
}

// ListQuotes returns the recent quote history
// @Summary List recent quotes
// @Description Return the most recent quotes, newest first, optionally filtered by patient name
// @Tags Quotes
// @Produce json
// @Param limit query int false "Maximum quotes to return" default(50)
// @Param q query string false "Patient name filter; matching ignores case and accents"
// @Success 200 {object} dto.QuoteListResponse "Quote history"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	limit := getIntParam(c, "limit", 50)
	patientQuery := c.QueryParam("q")

	quotes, err := h.quoteService.ListHistory(limit, patientQuery)
	if err != nil {
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuoteListResponse{
		Quotes: quotes,
		Total:  len(quotes),
		Limit:  limit,
	})
}

// GetQuote retrieves a single quote by ID
// @Summary Get quote by ID
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} dto.QuoteResponse "Quote details"
// @Failure 400 {object} errors.ErrorResponse "QUOTE_005 - Invalid ID format"
// @Failure 404 {object} errors.ErrorResponse "QUOTE_001 - Quote not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.QuoteInvalidID)
	}

	quote, err := h.quoteService.GetQuote(id)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return SendError(c, apierrors.QuoteNotFound)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{Quote: quote})
}

// UpdateStatus transitions a quote's workflow status
// @Summary Update quote status
// @Description Move a quote between workflow states; only Pendiente quotes may change state
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param request body dto.UpdateQuoteStatusRequest true "Target status"
// @Success 200 {object} dto.QuoteResponse "Quote updated"
// @Failure 400 {object} errors.ErrorResponse "QUOTE_003 - Unknown status"
// @Failure 404 {object} errors.ErrorResponse "QUOTE_001 - Quote not found"
// @Failure 422 {object} errors.ErrorResponse "QUOTE_004 - Illegal transition"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes/{id}/status [put]
func (h *QuoteHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.QuoteInvalidID)
	}

	var req dto.UpdateQuoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	quote, err := h.quoteService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return SendError(c, apierrors.QuoteNotFound)
		}
		if errors.Is(err, models.ErrInvalidQuoteStatus) {
			return SendError(c, apierrors.QuoteInvalidStatus)
		}
		if errors.Is(err, models.ErrIllegalTransition) {
			return SendError(c, apierrors.QuoteIllegalTransition)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{
		Quote:   quote,
		Message: "Quote status updated successfully",
	})
}

// UpdateQuote replaces a quote's lines and tier and recomputes its totals
// @Summary Edit a quote
// @Description Replace the stored line set and tier wholesale and recompute all totals
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param request body dto.UpdateQuoteRequest true "New lines and tier"
// @Success 200 {object} dto.QuoteResponse "Quote updated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "QUOTE_001 - Quote not found"
// @Failure 422 {object} errors.ErrorResponse "QUOTE_006 - Duplicate cart line identifiers"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.QuoteInvalidID)
	}

	var req dto.UpdateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	lines, err := parseCartLines(req.Lines)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	quote, err := h.quoteService.ReplaceAndRecompute(id, lines, req.TierLabel)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return SendError(c, apierrors.QuoteNotFound)
		}
		if errors.Is(err, models.ErrUnknownTier) {
			return SendError(c, apierrors.ValidationInvalidTier)
		}
		if errors.Is(err, models.ErrDuplicateCartLine) {
			return SendError(c, apierrors.QuoteDuplicateLine)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{
		Quote:   quote,
		Message: "Quote updated successfully",
	})
}

// DeleteQuote removes a quote permanently
// @Summary Delete a quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Quote deleted"
// @Failure 400 {object} errors.ErrorResponse "QUOTE_005 - Invalid ID format"
// @Failure 404 {object} errors.ErrorResponse "QUOTE_001 - Quote not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.QuoteInvalidID)
	}

	if err := h.quoteService.DeleteQuote(id); err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return SendError(c, apierrors.QuoteNotFound)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quote deleted successfully"})
}

// GetDocument regenerates the printable document for a stored quote
// @Summary Regenerate a quote document
// @Description Render the quotation document with the validity window of the original print
// @Tags Quotes
// @Produce plain
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {string} string "Quotation document"
// @Failure 400 {object} errors.ErrorResponse "QUOTE_005 - Invalid ID format"
// @Failure 404 {object} errors.ErrorResponse "QUOTE_001 - Quote not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /quotes/{id}/document [get]
func (h *QuoteHandler) GetDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.QuoteInvalidID)
	}

	doc, err := h.documentService.RenderQuote(id)
	if err != nil {
		if errors.Is(err, repositories.ErrQuoteNotFound) {
			return SendError(c, apierrors.QuoteNotFound)
		}
		return SendStoreError(c, err)
	}

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", doc)
}

// PreviewQuote computes totals and renders a document without saving
// @Summary Preview a quotation
// @Description Compute subtotal, discount, and total for an unsaved cart and render its document
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.PreviewQuoteRequest true "Cart lines and tier"
// @Success 200 {object} dto.QuotePreviewResponse "Computed totals and document"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c echo.Context) error {
	var req dto.PreviewQuoteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	lines, err := parseCartLines(req.Lines)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	doc, totals, err := h.documentService.RenderPreview(req.PatientName, lines, req.TierLabel)
	if err != nil {
		if errors.Is(err, models.ErrUnknownTier) {
			return SendError(c, apierrors.ValidationInvalidTier)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.QuotePreviewResponse{
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Total:    totals.Total,
		Document: string(doc),
	})
}

// ListTiers returns the fixed discount tariff list
// @Summary List discount tiers
// @Tags Quotes
// @Produce json
// @Success 200 {object} dto.TierListResponse "Discount tiers in display order"
// @Router /quotes/tiers [get]
func (h *QuoteHandler) ListTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.TierListResponse{Tiers: models.AllTiers()})
}
