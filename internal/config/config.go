package config

import (
	"os"
	"strconv"
	"time"

	"skyport/internal/cache"
	"skyport/internal/database"
	"skyport/internal/messaging"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Bearer token auth
	JWTSecret      string
	AccessTokenTTL time.Duration

	// Order listing pagination
	OrderPageSize    int
	OrderMaxPageSize int

	// Airplane image uploads
	UploadDir string

	Database database.Config
	NATS     messaging.Config
	Cache    cache.Config
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_TTL_MIN", 60)) * time.Minute,

		OrderPageSize:    getEnvInt("ORDER_PAGE_SIZE", 3),
		OrderMaxPageSize: getEnvInt("ORDER_MAX_PAGE_SIZE", 100),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "skyport"),
			Password:           getEnv("DB_PASSWORD", "skyport123"),
			DBName:             getEnv("DB_NAME", "skyport"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "skyport"),
			ClientID:  getEnv("NATS_CLIENT_ID", "skyport-api"),
		},

		Cache: cache.Config{
			Addr:           getEnv("CACHE_ADDR", "localhost:6379"),
			Password:       os.Getenv("CACHE_PASSWORD"),
			DB:             getEnvInt("CACHE_DB", 0),
			FlightsTTLSec:  getEnvInt("CACHE_FLIGHTS_TTL_SEC", 30),
			AuthTTLSec:     getEnvInt("CACHE_AUTH_TTL_SEC", 300),
			DialTimeoutSec: getEnvInt("CACHE_DIAL_TIMEOUT_SEC", 5),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
