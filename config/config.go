package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the relay. Values come from the
// environment, with a .env file loaded first if one exists.
type Config struct {
	Port            string
	AnthropicAPIKey string
	AllowedOrigins  string
	LogLevel        string
	LogFile         string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win over defaults.
func Load() *Config {
	// Ignore the error: running without a .env file is the normal
	// deployment case.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8000"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", "logs/app.log"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
