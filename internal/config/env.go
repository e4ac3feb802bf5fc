package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort                 = "3001"
	defaultEnvironment          = "development"
	defaultUsername             = "demo_user"
	defaultHFProvider           = "publicai"
	defaultHFModel              = "swiss-ai/Apertus-70B-Instruct-2509"
	defaultProviderBaseURL      = "https://router.huggingface.co"
	defaultProviderTimeout      = 60 * time.Second
	defaultGeneratorMaxTokens   = 800
	defaultGeneratorTemperature = float32(0.2)
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// HF_API_KEY is deliberately not required here: a missing credential is
	// reported per request as a configuration error, the server still serves history
	cfg := &Config{
		DatabaseURL:          databaseURL,
		Port:                 getEnv("PORT", defaultPort),
		Environment:          getEnv("ENVIRONMENT", defaultEnvironment),
		DefaultUsername:      getEnv("DEFAULT_USERNAME", defaultUsername),
		AllowedOrigins:       parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		HFAPIKey:             strings.TrimSpace(os.Getenv("HF_API_KEY")),
		HFProvider:           getEnv("HF_PROVIDER", defaultHFProvider),
		HFModel:              getEnv("HF_MODEL", defaultHFModel),
		ProviderBaseURL:      strings.TrimRight(getEnv("PROVIDER_BASE_URL", defaultProviderBaseURL), "/"),
		ProviderTimeout:      defaultProviderTimeout,
		GeneratorMaxTokens:   defaultGeneratorMaxTokens,
		GeneratorTemperature: defaultGeneratorTemperature,
	}

	if raw := os.Getenv("PROVIDER_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("PROVIDER_TIMEOUT must be a positive duration, got %q", raw)
		}

		cfg.ProviderTimeout = timeout
	}

	if raw := os.Getenv("GENERATOR_MAX_TOKENS"); raw != "" {
		maxTokens, err := strconv.Atoi(raw)
		if err != nil || maxTokens <= 0 {
			return nil, fmt.Errorf("GENERATOR_MAX_TOKENS must be a positive integer, got %q", raw)
		}

		cfg.GeneratorMaxTokens = maxTokens
	}

	if raw := os.Getenv("GENERATOR_TEMPERATURE"); raw != "" {
		temperature, err := strconv.ParseFloat(raw, 32)
		if err != nil || temperature < 0 || temperature > 2 {
			return nil, fmt.Errorf("GENERATOR_TEMPERATURE must be between 0 and 2, got %q", raw)
		}

		cfg.GeneratorTemperature = float32(temperature)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
