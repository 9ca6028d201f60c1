package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	Cache CacheConfig
	Chat  ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// StoreConfig controls the simulated-network behavior of the in-memory record
// store. Tests run with zero latency and a pinned failure rate.
type StoreConfig struct {
	Latency           time.Duration
	DeleteLatency     time.Duration
	DeleteFailureRate float64
	SeedData          bool
}

// CacheConfig controls the console client's list cache.
type CacheConfig struct {
	StalenessWindow time.Duration
}

type ChatConfig struct {
	SessionTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Store: StoreConfig{
			Latency:           time.Duration(getEnvAsInt("STORE_LATENCY_MS", 400)) * time.Millisecond,
			DeleteLatency:     time.Duration(getEnvAsInt("STORE_DELETE_LATENCY_MS", 300)) * time.Millisecond,
			DeleteFailureRate: getEnvAsFloat("STORE_DELETE_FAILURE_RATE", 0.10),
			SeedData:          getEnvAsBool("STORE_SEED_DATA", true),
		},
		Cache: CacheConfig{
			StalenessWindow: time.Duration(getEnvAsInt("CACHE_STALENESS_MS", 30000)) * time.Millisecond,
		},
		Chat: ChatConfig{
			SessionTTL: time.Duration(getEnvAsInt("CHAT_SESSION_TTL_MIN", 60)) * time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
