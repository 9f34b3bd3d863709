package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"labquote/internal/database"
	"labquote/internal/dto"
	"labquote/internal/models"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CleanupHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *CleanupHandler
}

func TestCleanupHandlerSuite(t *testing.T) {
	suite.Run(t, new(CleanupHandlerTestSuite))
}

func (s *CleanupHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	repo := repositories.NewCatalogRepository(s.db.DB)
	logger := services.NewQuoteLogger(slog.Default())
	metrics := services.NewNoopMetrics()
	catalogService := services.NewCatalogService(repo, 10*time.Minute, logger, metrics)
	cleanupService := services.NewCleanupService(repo, catalogService, logger, metrics)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.handler = NewCleanupHandler(cleanupService)
}

func (s *CleanupHandlerTestSuite) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *CleanupHandlerTestSuite) seedDirty(value string) {
	item := database.CreateTestItem(s.T(), s.db, "TP", 90.00)
	err := s.db.Model(&models.CatalogItem{}).
		Where("id = ?", item.ID).
		Update("sample_type", value).Error
	s.Require().NoError(err)
}

func (s *CleanupHandlerTestSuite) TestListFields() {
	c, rec := s.request(http.MethodGet, "/api/v1/cleanup", "")
	s.Require().NoError(s.handler.ListFields(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CleanupFieldsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Contains(response.Fields, models.FieldSampleType)
	s.NotContains(response.Fields, models.FieldName)
}

func (s *CleanupHandlerTestSuite) TestGetReport() {
	s.seedDirty("Plasma EDTA")

	c, rec := s.request(http.MethodGet, "/api/v1/cleanup/sample_type", "")
	c.SetParamNames("field")
	c.SetParamValues("sample_type")

	s.Require().NoError(s.handler.GetReport(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CleanupReportResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().NotNil(response.Report)
	s.False(response.Report.Clean)
	s.Require().Len(response.Report.DirtyValues, 1)
	s.Equal("Plasma EDTA", response.Report.DirtyValues[0].Value)
}

func (s *CleanupHandlerTestSuite) TestGetReport_NonEnumField() {
	c, rec := s.request(http.MethodGet, "/api/v1/cleanup/name", "")
	c.SetParamNames("field")
	c.SetParamValues("name")

	s.Require().NoError(s.handler.GetReport(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CATALOG_004", response.Error.Code)
}

func (s *CleanupHandlerTestSuite) TestGetReport_UnknownField() {
	c, rec := s.request(http.MethodGet, "/api/v1/cleanup/barcode", "")
	c.SetParamNames("field")
	c.SetParamValues("barcode")

	s.Require().NoError(s.handler.GetReport(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CLEANUP_001", response.Error.Code)
}

func (s *CleanupHandlerTestSuite) TestGetReport_StoreFailure() {
	s.Require().NoError(s.db.Migrator().DropTable(&models.CatalogItem{}))

	c, rec := s.request(http.MethodGet, "/api/v1/cleanup/sample_type", "")
	c.SetParamNames("field")
	c.SetParamValues("sample_type")

	s.Require().NoError(s.handler.GetReport(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_002", response.Error.Code)
	s.Require().NotEmpty(response.Error.Details)
	s.Contains(response.Error.Details[0], "sample_type")
}

func (s *CleanupHandlerTestSuite) TestApplyCorrection() {
	s.seedDirty("Plasma EDTA")

	body := `{"from": "Plasma EDTA", "to": "Plasma (EDTA)"}`
	c, rec := s.request(http.MethodPost, "/api/v1/cleanup/sample_type/apply", body)
	c.SetParamNames("field")
	c.SetParamValues("sample_type")

	s.Require().NoError(s.handler.ApplyCorrection(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ApplyCleanupResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(1), response.Affected)

	var stored models.CatalogItem
	s.Require().NoError(s.db.First(&stored).Error)
	s.Equal("Plasma (EDTA)", stored.SampleType)
}

func (s *CleanupHandlerTestSuite) TestApplyCorrection_NothingToApply() {
	database.CreateTestItem(s.T(), s.db, "Glucosa", 50.00)

	body := `{"from": "Plasma EDTA", "to": "Plasma (EDTA)"}`
	c, rec := s.request(http.MethodPost, "/api/v1/cleanup/sample_type/apply", body)
	c.SetParamNames("field")
	c.SetParamValues("sample_type")

	s.Require().NoError(s.handler.ApplyCorrection(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CLEANUP_003", response.Error.Code)
}

func (s *CleanupHandlerTestSuite) TestApplyCorrection_MissingValues() {
	c, rec := s.request(http.MethodPost, "/api/v1/cleanup/sample_type/apply", `{"from": "x"}`)
	c.SetParamNames("field")
	c.SetParamValues("sample_type")

	s.Require().NoError(s.handler.ApplyCorrection(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
