package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DataSource string
	DataPath   string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	AutoMigrate   bool
	MigrationsDir string

	TransactionListLimit int
	KPIWindowDays        int
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	return &Config{
		Port:     getEnv("PORT", "3000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataSource: getEnv("DATA_SOURCE", SourceFile),
		DataPath:   getEnv("DATA_PATH", "data/dashboard.json"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "dashboard"),
		DBPassword:    getEnv("DB_PASSWORD", "dashboard_secret"),
		DBName:        getEnv("DB_NAME", "dashboard"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:   getEnv("AUTO_MIGRATE", "false") == "true",
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://migrations"),

		TransactionListLimit: getEnvInt("TRANSACTION_LIST_LIMIT", 50),
		KPIWindowDays:        getEnvInt("KPI_WINDOW_DAYS", 31),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.DataSource != SourceFile && c.DataSource != SourcePostgres {
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, c.DataSource)
	}
	if c.KPIWindowDays <= 0 {
		return fmt.Errorf("KPI_WINDOW_DAYS must be positive, got %d", c.KPIWindowDays)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int("fallback", fallback).Msg("invalid integer setting")
		return fallback
	}
	return n
}
