package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Market simulation
	EvolveInterval  time.Duration
	SparklinePoints int
	TickerInterval  time.Duration
	TickerTopN      int

	// External auth provider (Supabase-compatible)
	AuthBaseURL   string
	AuthAnonKey   string
	AuthTimeout   time.Duration
	SessionSecret string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Market simulation
		EvolveInterval:  getDurationEnv("MARKET_EVOLVE_INTERVAL", 30*time.Second),
		SparklinePoints: getIntEnv("MARKET_SPARKLINE_POINTS", 24),
		TickerInterval:  getDurationEnv("TICKER_STREAM_INTERVAL", 5*time.Second),
		TickerTopN:      getIntEnv("TICKER_TOP_N", 10),

		// Auth provider
		AuthBaseURL:   getEnv("AUTH_BASE_URL", "http://localhost:54321"),
		AuthAnonKey:   getEnv("AUTH_ANON_KEY", ""),
		AuthTimeout:   getDurationEnv("AUTH_TIMEOUT", 10*time.Second),
		SessionSecret: getEnv("SESSION_JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv parses a duration environment variable, falling back on invalid input.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// getIntEnv parses a positive integer environment variable, falling back on invalid input.
func getIntEnv(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
