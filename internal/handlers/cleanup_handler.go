package handlers

import (
	"errors"
	"net/http"

	"labquote/internal/dto"
	apierrors "labquote/internal/errors"
	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/labstack/echo/v4"
)

// CleanupHandler handles data-cleanup HTTP requests
type CleanupHandler struct {
	cleanupService services.CleanupServiceInterface
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(cleanupService services.CleanupServiceInterface) *CleanupHandler {
	return &CleanupHandler{cleanupService: cleanupService}
}

// ListFields returns the fields eligible for cleanup
// @Summary List cleanable fields
// @Description Return the enum catalog fields whose values can be audited against an official list
// @Tags Cleanup
// @Produce json
// @Success 200 {object} dto.CleanupFieldsResponse "Cleanable field names"
// @Router /cleanup [get]
func (h *CleanupHandler) ListFields(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CleanupFieldsResponse{
		Fields: h.cleanupService.Fields(),
	})
}

// GetReport classifies a field's stored values against its official list
// @Summary Get a cleanup report
// @Description List each non-official value of the field with its row count and suggested correction
// @Tags Cleanup
// @Produce json
// @Param field path string true "Catalog field name"
// @Success 200 {object} dto.CleanupReportResponse "Cleanup report"
// @Failure 404 {object} errors.ErrorResponse "CLEANUP_001 - Unknown field"
// @Failure 422 {object} errors.ErrorResponse "CATALOG_004 - Field has no official value list"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /cleanup/{field} [get]
func (h *CleanupHandler) GetReport(c echo.Context) error {
	field := c.Param("field")

	report, err := h.cleanupService.Report(field)
	if err != nil {
		if errors.Is(err, services.ErrFieldNotCleanable) {
			return sendFieldNotCleanable(c, field)
		}
		if errors.Is(err, repositories.ErrUnknownField) {
			return SendError(c, apierrors.CatalogUnknownField, apierrors.WithDetails(field))
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CleanupReportResponse{Report: report})
}

// ApplyCorrection bulk-rewrites one raw value across the field
// @Summary Apply a cleanup correction
// @Description Rewrite every row whose field exactly equals the source value; the catalog snapshot is invalidated
// @Tags Cleanup
// @Accept json
// @Produce json
// @Param field path string true "Catalog field name"
// @Param request body dto.ApplyCleanupRequest true "Source and target values"
// @Success 200 {object} dto.ApplyCleanupResponse "Rows rewritten"
// @Failure 400 {object} errors.ErrorResponse "CLEANUP_002 - Empty correction values"
// @Failure 422 {object} errors.ErrorResponse "CLEANUP_003 - No rows hold the source value"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /cleanup/{field}/apply [post]
func (h *CleanupHandler) ApplyCorrection(c echo.Context) error {
	field := c.Param("field")

	var req dto.ApplyCleanupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	affected, err := h.cleanupService.Apply(field, req.From, req.To)
	if err != nil {
		if errors.Is(err, services.ErrFieldNotCleanable) {
			return sendFieldNotCleanable(c, field)
		}
		if errors.Is(err, services.ErrEmptyCorrection) {
			return SendError(c, apierrors.CleanupEmptyCorrection)
		}
		if errors.Is(err, services.ErrNothingToApply) {
			return SendError(c, apierrors.CleanupNothingToApply)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ApplyCleanupResponse{
		Field:    field,
		From:     req.From,
		To:       req.To,
		Affected: affected,
		Message:  "Correction applied successfully",
	})
}

// sendFieldNotCleanable distinguishes a field the schema does not know at all
// from one it knows but that carries no official value list.
func sendFieldNotCleanable(c echo.Context, field string) error {
	if _, known := models.SchemaForField(field); known {
		return SendError(c, apierrors.CatalogFieldNotEnum, apierrors.WithDetails(field))
	}
	return SendError(c, apierrors.CleanupUnknownField, apierrors.WithDetails(field))
}
