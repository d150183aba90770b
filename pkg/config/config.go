package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Spoonacular recipe search configuration
	SpoonacularKey string

	// OpenAI configuration
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// HTTP server configuration
	ListenAddr  string
	CORSOrigins []string

	// Storage configuration
	DataDir string

	// Optional Redis broadcast configuration; broadcast is disabled
	// when RedisAddr is empty
	RedisAddr    string
	RedisChannel string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	spoonacularKey := os.Getenv("SPOONACULAR_KEY")
	if spoonacularKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_KEY environment variable is required")
	}
	cfg.SpoonacularKey = spoonacularKey

	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	if openAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	cfg.OpenAIAPIKey = openAIAPIKey

	// Optional configurations with defaults
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	cfg.ListenAddr = getEnvWithDefault("LISTEN_ADDR", ":8080")
	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisChannel = getEnvWithDefault("REDIS_CHANNEL", "favorites-events")

	originsStr := getEnvWithDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(originsStr, ",")

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.SpoonacularKey) > 8 {
		logCfg.SpoonacularKey = logCfg.SpoonacularKey[:8] + "...REDACTED..."
	}
	if len(logCfg.OpenAIAPIKey) > 8 {
		logCfg.OpenAIAPIKey = logCfg.OpenAIAPIKey[:8] + "...REDACTED..."
	}
	log.Printf("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
