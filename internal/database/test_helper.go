package database

import (
	"testing"

	"labquote/internal/config"
	"labquote/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestItem(t *testing.T, db *DB, name string, price float64) *models.CatalogItem {
	t.Helper()

	item := &models.CatalogItem{
		Name:         name,
		PublicPrice:  decimal.NewFromFloat(price),
		Origin:       "Laboratorio Santa Fe",
		SampleType:   "Suero",
		Temperature:  "Ambiente",
		ProcessTime:  "24 horas",
		DeliveryTime: "Día siguiente (24h)",
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test catalog item: %v", err)
	}

	return item
}

func CreateTestQuote(t *testing.T, db *DB, patient string, lines models.CartLines, tierLabel string) *models.Quote {
	t.Helper()

	tier, err := models.TierByLabel(tierLabel)
	if err != nil {
		t.Fatalf("unknown tier %q: %v", tierLabel, err)
	}

	quote := &models.Quote{
		PatientName: patient,
		Status:      models.QuoteStatusPending,
	}
	quote.Recompute(lines, tier)

	if err := db.Create(quote).Error; err != nil {
		t.Fatalf("failed to create test quote: %v", err)
	}

	return quote
}
