package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Lab      LabConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CatalogConfig controls the in-memory catalog snapshot and quote history reads.
type CatalogConfig struct {
	SnapshotTTL  time.Duration
	HistoryLimit int
}

// LabConfig is the laboratory identity printed on every quotation document.
type LabConfig struct {
	Name         string
	Address      string
	Contact      string
	LegalNotice  string
	ValidityDays int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "labquote_user"),
			Password:        getEnv("DB_PASSWORD", "labquote_password"),
			Name:            getEnv("DB_NAME", "labquote_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Catalog: CatalogConfig{
			SnapshotTTL:  getDurationEnv("CATALOG_SNAPSHOT_TTL", 10*time.Minute),
			HistoryLimit: getIntEnv("QUOTE_HISTORY_LIMIT", 50),
		},
		Lab: LabConfig{
			Name:         getEnv("LAB_NAME", "Laboratorio de Análisis Clínicos Santa Fe"),
			Address:      getEnv("LAB_ADDRESS", "Calle Miguel Cabrera 409 D, Col. Centro, Oaxaca de Juárez, Oaxaca"),
			Contact:      getEnv("LAB_CONTACT", "Tel: 9511895316 | labclinicosantafe@gmail.com"),
			LegalNotice:  getEnv("LAB_LEGAL_NOTICE", "Responsable Sanitario: QB. Olga Lidia Mendoza Velázquez. Cédula Prof: 1234567."),
			ValidityDays: getIntEnv("QUOTE_VALIDITY_DAYS", 30),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
