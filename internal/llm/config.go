package llm

import "time"

const (
	defaultBaseURL     = "https://router.huggingface.co"
	defaultRoute       = "publicai"
	defaultModel       = "swiss-ai/Apertus-70B-Instruct-2509"
	defaultMaxTokens   = 800
	defaultTemperature = float32(0.2)
	defaultTimeout     = 60 * time.Second
)

// fills zero values with defaults. Only a negative temperature is replaced.
func (c Config) withDefaults() Config {
	if c.Provider == "" {
		c.Provider = ProviderHuggingFace
	}

	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	if c.Route == "" {
		c.Route = defaultRoute
	}

	if c.Model == "" {
		c.Model = defaultModel
	}

	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}

	if c.Temperature < 0 {
		c.Temperature = defaultTemperature
	}

	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	return c
}

// the OpenAI-compatible endpoint root for the configured route
func (c Config) endpoint() string {
	return c.BaseURL + "/" + c.Route + "/v1"
}
