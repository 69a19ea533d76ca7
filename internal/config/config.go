// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Analytics   AnalyticsConfig
	Sentiment   SentimentConfig
	Generator   GeneratorConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
	MaxBodyBytes    int64
}

// AnalyticsConfig holds analysis pipeline configuration
type AnalyticsConfig struct {
	TopKeywords int
	RandomSeed  int64
}

// SentimentConfig holds sentiment classification capability configuration
type SentimentConfig struct {
	APIURL              string
	APIKey              string
	Model               string
	ConfidenceThreshold float64
	Timeout             time.Duration
}

// GeneratorConfig holds text generation capability configuration
type GeneratorConfig struct {
	APIURL    string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
			MaxBodyBytes:    int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 10<<20)),
		},
		Analytics: AnalyticsConfig{
			TopKeywords: getEnvAsInt("ANALYTICS_TOP_KEYWORDS", 5),
			RandomSeed:  int64(getEnvAsInt("ANALYTICS_RANDOM_SEED", 0)),
		},
		Sentiment: SentimentConfig{
			APIURL:              getEnv("SENTIMENT_API_URL", ""),
			APIKey:              getEnv("SENTIMENT_API_KEY", ""),
			Model:               getEnv("SENTIMENT_MODEL", "distilbert-base-uncased-finetuned-sst-2-english"),
			ConfidenceThreshold: getEnvAsFloat("SENTIMENT_CONFIDENCE_THRESHOLD", 0.7),
			Timeout:             getEnvAsDuration("SENTIMENT_TIMEOUT", 30*time.Second),
		},
		Generator: GeneratorConfig{
			APIURL:    getEnv("GENERATOR_API_URL", ""),
			APIKey:    getEnv("GENERATOR_API_KEY", ""),
			Model:     getEnv("GENERATOR_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvAsInt("GENERATOR_MAX_TOKENS", 150),
			Timeout:   getEnvAsDuration("GENERATOR_TIMEOUT", 60*time.Second),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	if config.Sentiment.ConfidenceThreshold < 0 || config.Sentiment.ConfidenceThreshold > 1 {
		return fmt.Errorf("sentiment confidence threshold must be between 0 and 1")
	}
	if config.Analytics.TopKeywords < 1 {
		return fmt.Errorf("top keywords must be at least 1")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
