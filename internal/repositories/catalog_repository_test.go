package repositories

import (
	"testing"

	"labquote/internal/database"
	"labquote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo CatalogRepositoryInterface
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}

func (s *CatalogRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCatalogRepository(s.db.DB)
}

func (s *CatalogRepositoryTestSuite) TestCreateAndGetByID() {
	item := &models.CatalogItem{
		Name:        "Biometría Hemática",
		PublicPrice: decimal.NewFromFloat(150.00),
		Origin:      "Laboratorio Santa Fe",
	}

	s.Require().NoError(s.repo.Create(item))
	s.NotEqual(uuid.Nil, item.ID)

	fetched, err := s.repo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal("Biometría Hemática", fetched.Name)
	s.True(fetched.PublicPrice.Equal(decimal.NewFromFloat(150.00)))
}

func (s *CatalogRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrItemNotFound)
}

func (s *CatalogRepositoryTestSuite) TestGetAll_OrderedByName() {
	database.CreateTestItem(s.T(), s.db, "Urea", 80)
	database.CreateTestItem(s.T(), s.db, "Glucosa", 55)

	items, err := s.repo.GetAll()
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("Glucosa", items[0].Name)
	s.Equal("Urea", items[1].Name)
}

func (s *CatalogRepositoryTestSuite) TestUpdate() {
	item := database.CreateTestItem(s.T(), s.db, "Glucosa", 55)

	item.PublicPrice = decimal.NewFromFloat(60.00)
	item.SampleType = "Plasma (EDTA)"
	s.Require().NoError(s.repo.Update(item))

	fetched, err := s.repo.GetByID(item.ID)
	s.Require().NoError(err)
	s.True(fetched.PublicPrice.Equal(decimal.NewFromFloat(60.00)))
	s.Equal("Plasma (EDTA)", fetched.SampleType)
}

func (s *CatalogRepositoryTestSuite) TestUpdate_NotFound() {
	item := &models.CatalogItem{ID: uuid.New(), Name: "Fantasma"}
	s.ErrorIs(s.repo.Update(item), ErrItemNotFound)
}

func (s *CatalogRepositoryTestSuite) TestDistinctFieldValues() {
	for _, sample := range []string{"Suero", "Suero", "suero ", "Plasma (EDTA)"} {
		item := &models.CatalogItem{Name: "Estudio " + uuid.NewString(), SampleType: sample}
		s.Require().NoError(s.repo.Create(item))
	}

	values, err := s.repo.DistinctFieldValues(models.FieldSampleType)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"Suero", "suero", "Plasma (EDTA)"}, values)
}

func (s *CatalogRepositoryTestSuite) TestDistinctFieldValues_UnknownField() {
	_, err := s.repo.DistinctFieldValues("search_index")
	s.ErrorIs(err, ErrUnknownField)
}

func (s *CatalogRepositoryTestSuite) TestCountAndUpdateFieldValue() {
	for i := 0; i < 3; i++ {
		item := &models.CatalogItem{Name: "Estudio " + uuid.NewString(), SampleType: "suero "}
		s.Require().NoError(s.repo.Create(item))
	}
	other := &models.CatalogItem{Name: "Otro", SampleType: "Suero"}
	s.Require().NoError(s.repo.Create(other))

	count, err := s.repo.CountFieldValue(models.FieldSampleType, "suero")
	s.Require().NoError(err)
	s.EqualValues(3, count, "trim hook folds 'suero ' to 'suero' on insert")

	affected, err := s.repo.UpdateFieldValue(models.FieldSampleType, "suero", "Suero")
	s.Require().NoError(err)
	s.EqualValues(3, affected)

	count, err = s.repo.CountFieldValue(models.FieldSampleType, "suero")
	s.Require().NoError(err)
	s.EqualValues(0, count)

	count, err = s.repo.CountFieldValue(models.FieldSampleType, "Suero")
	s.Require().NoError(err)
	s.EqualValues(4, count)
}
