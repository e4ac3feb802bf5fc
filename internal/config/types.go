package config

import "time"

type Config struct {
	DatabaseURL     string
	Port            string
	Environment     string
	DefaultUsername string
	AllowedOrigins  []string

	// inference provider (Hugging Face router, OpenAI-compatible)
	HFAPIKey             string
	HFProvider           string
	HFModel              string
	ProviderBaseURL      string
	ProviderTimeout      time.Duration
	GeneratorMaxTokens   int
	GeneratorTemperature float32
}

// true when running with production logging and error sanitization
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
