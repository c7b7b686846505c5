package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	Timezone    string
	RequireAuth bool
	JWTSecret   string
	Mongo       MongoConfig
	LegacyDB    DatabaseConfig
	Stats       StatsConfig
}

// MongoConfig holds the document store connection details
type MongoConfig struct {
	URI                string
	Database           string
	RecordsCollection  string
	PatientsCollection string
	ConnectTimeout     time.Duration
	EnsureIndexes      bool
}

// DatabaseConfig holds the legacy recording-session database connection details
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// StatsConfig holds the dashboard display constants and query limits
type StatsConfig struct {
	MinutesSavedPerVisit int
	TimeSavedPercent     string
	DisplayAccuracy      string
	QueryTimeout         time.Duration
	EnrichConcurrency    int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	legacy := DatabaseConfig{
		Driver:   strings.ToLower(getEnv("LEGACY_DB_DRIVER", "mysql")),
		Host:     getEnv("LEGACY_DB_HOST", "localhost"),
		Username: getEnv("LEGACY_DB_USERNAME", "root"),
		Password: getEnv("LEGACY_DB_PASSWORD", ""),
		Name:     getEnv("LEGACY_DB_NAME", "charting"),
	}

	// Build DSN (Data Source Name) for the selected driver
	switch legacy.Driver {
	case "mysql":
		legacy.Port = getEnv("LEGACY_DB_PORT", "3306")
		legacy.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			legacy.Username, legacy.Password, legacy.Host, legacy.Port, legacy.Name)
	case "postgres":
		legacy.Port = getEnv("LEGACY_DB_PORT", "5432")
		legacy.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			legacy.Host, legacy.Port, legacy.Username, legacy.Password, legacy.Name,
			getEnv("LEGACY_DB_SSLMODE", "disable"))
	default:
		return nil, fmt.Errorf("unsupported LEGACY_DB_DRIVER: %q", legacy.Driver)
	}
	if dsn := getEnv("LEGACY_DB_DSN", ""); dsn != "" {
		legacy.DSN = dsn
	}

	mongoTimeout, err := time.ParseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_CONNECT_TIMEOUT: %w", err)
	}

	ensureIndexes, err := strconv.ParseBool(getEnv("MONGO_ENSURE_INDEXES", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_ENSURE_INDEXES: %w", err)
	}

	mongoConfig := MongoConfig{
		URI:                getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:           getEnv("MONGO_DATABASE", "charting"),
		RecordsCollection:  getEnv("MONGO_RECORDS_COLLECTION", "records"),
		PatientsCollection: getEnv("MONGO_PATIENTS_COLLECTION", "patients"),
		ConnectTimeout:     mongoTimeout,
		EnsureIndexes:      ensureIndexes,
	}

	minutesSaved, err := strconv.Atoi(getEnv("MINUTES_SAVED_PER_VISIT", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid MINUTES_SAVED_PER_VISIT: %w", err)
	}

	queryTimeout, err := time.ParseDuration(getEnv("STATS_QUERY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_QUERY_TIMEOUT: %w", err)
	}

	enrichConcurrency, err := strconv.Atoi(getEnv("STATS_ENRICH_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_ENRICH_CONCURRENCY: %w", err)
	}

	requireAuth, err := strconv.ParseBool(getEnv("REQUIRE_AUTH", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRE_AUTH: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:3000"),
		Environment: getEnv("NODE_ENV", "development"),
		Timezone:    getEnv("TZ_NAME", ""),
		RequireAuth: requireAuth,
		JWTSecret:   getEnv("JWT_SECRET", ""),
		Mongo:       mongoConfig,
		LegacyDB:    legacy,
		Stats: StatsConfig{
			MinutesSavedPerVisit: minutesSaved,
			TimeSavedPercent:     getEnv("TIME_SAVED_PERCENT", "73%"),
			DisplayAccuracy:      getEnv("DISPLAY_ACCURACY", "98.5%"),
			QueryTimeout:         queryTimeout,
			EnrichConcurrency:    enrichConcurrency,
		},
	}

	if cfg.RequireAuth && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when REQUIRE_AUTH is enabled")
	}

	return cfg, nil
}

// Location resolves the timezone used for local calendar dates.
// An empty Timezone means the server's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_NAME: %w", err)
	}
	return loc, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
