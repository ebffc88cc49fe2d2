// Package config provides centralized default values for Lakbay
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile overlays a .env file onto the environment. Real environment
// variables always win; a missing file is not an error.
func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	PublicBaseURL      string

	// Database
	SQLitePath               string
	TursoDatabase            string
	TursoToken               string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Local fallback store
	LocalStatePath string

	// Auth
	JWTSecret     string
	AdminPassword string
	OwnerTokenTTL time.Duration
	SessionIssuer string

	// Cache TTLs
	SnapshotCacheTTL time.Duration
	UsernameCacheTTL time.Duration

	// Caption generator
	CaptionEndpoint string
	CaptionAPIKey   string
	CaptionModels   string
	CaptionTimeout  time.Duration

	// Share email (optional)
	EmailEnabled bool

	// Logging
	LogJSONFormat bool
	LogToFile     bool
	LogDirectory  string

	// Performance tracking
	PerfMaxMarkers int
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "https://lakbay.ph")

	// Database
	SQLitePath = getEnvString("SQLITE_PATH", "data/lakbay.db")
	TursoDatabase = getEnvString("TURSO_DATABASE_URL", "")
	TursoToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	// Local fallback store
	LocalStatePath = getEnvString("LOCAL_STATE_PATH", "data/local-state.json")

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "lakbay-dev-secret-change-me")
	AdminPassword = getEnvString("ADMIN_PASSWORD", "")
	OwnerTokenTTL = getEnvDuration("OWNER_TOKEN_TTL", 720*time.Hour)
	SessionIssuer = getEnvString("SESSION_ISSUER", "lakbay")

	// Cache TTLs
	SnapshotCacheTTL = getEnvDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute)
	UsernameCacheTTL = getEnvDuration("USERNAME_CACHE_TTL", 10*time.Minute)

	// Caption generator
	CaptionEndpoint = getEnvString("CAPTION_ENDPOINT", "https://openrouter.ai/api/v1/chat/completions")
	CaptionAPIKey = getEnvString("CAPTION_API_KEY", "")
	CaptionModels = getEnvString("CAPTION_MODELS", "meta-llama/llama-3.3-70b-instruct,mistralai/mistral-small")
	CaptionTimeout = getEnvDuration("CAPTION_TIMEOUT", 8*time.Second)

	// Share email (optional)
	EmailEnabled = getEnvBool("SHARE_EMAIL_ENABLED", false)

	// Logging
	LogJSONFormat = getEnvBool("LOG_JSON_FORMAT", true)
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")

	// Performance tracking
	PerfMaxMarkers = getEnvInt("PERF_MAX_MARKERS", 1000)
}
