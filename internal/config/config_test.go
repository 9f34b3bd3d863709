package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.SnapshotTTL)
	assert.Equal(t, 50, cfg.Catalog.HistoryLimit)
	assert.Equal(t, 30, cfg.Lab.ValidityDays)
	assert.NotEmpty(t, cfg.Lab.Name)
	assert.NotEmpty(t, cfg.Lab.LegalNotice)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_SNAPSHOT_TTL", "2m")
	t.Setenv("QUOTE_HISTORY_LIMIT", "10")
	t.Setenv("LAB_NAME", "Laboratorio de Prueba")
	t.Setenv("APP_ENV", "testing")

	cfg := Load()

	assert.Equal(t, 2*time.Minute, cfg.Catalog.SnapshotTTL)
	assert.Equal(t, 10, cfg.Catalog.HistoryLimit)
	assert.Equal(t, "Laboratorio de Prueba", cfg.Lab.Name)
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("QUOTE_HISTORY_LIMIT", "not-a-number")
	t.Setenv("CATALOG_SNAPSHOT_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 50, cfg.Catalog.HistoryLimit)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.SnapshotTTL)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "labquote", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=labquote sslmode=disable", cfg.DSN())
}
