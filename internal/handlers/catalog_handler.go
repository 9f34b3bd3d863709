package handlers

import (
	"errors"
	"net/http"
	"strings"

	"labquote/internal/catalog"
	"labquote/internal/dto"
	apierrors "labquote/internal/errors"
	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Browse returns the catalog filtered by origin and searched by name
// @Summary Browse the study catalog
// @Description Filter the catalog by origin tag and search study names; matching ignores case and accents
// @Tags Catalog
// @Produce json
// @Param origin query string false "Origin tag, or 'all'"
// @Param q query string false "Search text matched against study names"
// @Success 200 {object} dto.CatalogBrowseResponse "Filtered catalog listing"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /catalog [get]
func (h *CatalogHandler) Browse(c echo.Context) error {
	origin := c.QueryParam("origin")
	if origin == "" {
		origin = catalog.OriginAll
	}
	query := c.QueryParam("q")

	entries, err := h.catalogService.Browse(origin, query)
	if err != nil {
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogBrowseResponse{
		Items:  entries,
		Total:  len(entries),
		Origin: origin,
		Query:  query,
	})
}

// Origins lists the selectable origin filters
// @Summary List catalog origins
// @Description Return the distinct origin tags present in the catalog, prefixed by the 'all' sentinel
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogOriginsResponse "Origin tags"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /catalog/origins [get]
func (h *CatalogHandler) Origins(c echo.Context) error {
	origins, err := h.catalogService.Origins()
	if err != nil {
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogOriginsResponse{
		Origins: append([]string{catalog.OriginAll}, origins...),
	})
}

// Schema exposes the declared catalog field schema
// @Summary Get the catalog field schema
// @Description Return every catalog field with its kind and, for enum fields, the official value list
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogSchemaResponse "Field schema"
// @Router /catalog/schema [get]
func (h *CatalogHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CatalogSchemaResponse{
		Fields: h.catalogService.Schema(),
	})
}

// GetItem retrieves a single catalog item by ID
// @Summary Get catalog item by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Catalog item ID (UUID)"
// @Success 200 {object} dto.CatalogItemResponse "Catalog item"
// @Failure 400 {object} errors.ErrorResponse "CATALOG_002 - Invalid ID format"
// @Failure 404 {object} errors.ErrorResponse "CATALOG_001 - Item not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /catalog/{id} [get]
func (h *CatalogHandler) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CatalogInvalidID)
	}

	item, err := h.catalogService.GetItem(id)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return SendError(c, apierrors.CatalogItemNotFound)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogItemResponse{Item: item})
}

// CreateItem adds a new study to the catalog
// @Summary Create a catalog item
// @Description Add a new study; the catalog snapshot is invalidated on success
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCatalogItemRequest true "Catalog item details"
// @Success 201 {object} dto.CatalogItemResponse "Item created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid price"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /catalog [post]
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req dto.CreateCatalogItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	price, err := decimal.NewFromString(req.PublicPrice)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPrice)
	}

	item := &models.CatalogItem{
		Name:         req.Name,
		PublicPrice:  price,
		Origin:       req.Origin,
		ProcessTime:  req.ProcessTime,
		DeliveryTime: req.DeliveryTime,
		SampleType:   req.SampleType,
		Temperature:  req.Temperature,
	}

	if err := h.catalogService.CreateItem(item); err != nil {
		if errors.Is(err, models.ErrItemNameRequired) {
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("name"))
		}
		if errors.Is(err, models.ErrNegativePrice) {
			return SendError(c, apierrors.ValidationInvalidPrice)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CatalogItemResponse{
		Item:    item,
		Message: "Catalog item created successfully",
	})
}

// UpdateItem replaces every editable field of a catalog item
// @Summary Update a catalog item
// @Description Replace the item's fields wholesale; the catalog snapshot is invalidated on success
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Catalog item ID (UUID)"
// @Param request body dto.UpdateCatalogItemRequest true "New field values"
// @Success 200 {object} dto.CatalogItemResponse "Item updated"
// @Failure 400 {object} errors.ErrorResponse "CATALOG_002 - Invalid ID format"
// @Failure 404 {object} errors.ErrorResponse "CATALOG_001 - Item not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store operation failed"
// @Router /catalog/{id} [put]
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CatalogInvalidID)
	}

	var req dto.UpdateCatalogItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	price, err := decimal.NewFromString(req.PublicPrice)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidPrice)
	}

	item := &models.CatalogItem{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		PublicPrice:  price,
		Origin:       req.Origin,
		ProcessTime:  req.ProcessTime,
		DeliveryTime: req.DeliveryTime,
		SampleType:   req.SampleType,
		Temperature:  req.Temperature,
	}

	if err := h.catalogService.UpdateItem(item); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return SendError(c, apierrors.CatalogItemNotFound)
		}
		if errors.Is(err, models.ErrItemNameRequired) {
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("name"))
		}
		if errors.Is(err, models.ErrNegativePrice) {
			return SendError(c, apierrors.ValidationInvalidPrice)
		}
		return SendStoreError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CatalogItemResponse{
		Item:    item,
		Message: "Catalog item updated successfully",
	})
}
