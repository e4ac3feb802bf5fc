package main

import (
	"fmt"

	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/config"
	"codeberg.org/codecopilot/server/internal/generator"
	"codeberg.org/codecopilot/server/internal/history"
	"codeberg.org/codecopilot/server/internal/llm"
	"codeberg.org/codecopilot/server/internal/logger"
	"codeberg.org/codecopilot/server/internal/metrics"
)

// creates and configures all services
func InitializeServices(
	cfg *config.Config,
	userRepo *users.Repository,
	generationRepo *generations.Repository,
	m *metrics.Metrics,
) (*Services, error) {
	codeGenerator, err := llm.NewCodeGenerator(llm.Config{
		Provider:    llm.ProviderHuggingFace,
		APIKey:      cfg.HFAPIKey,
		BaseURL:     cfg.ProviderBaseURL,
		Route:       cfg.HFProvider,
		Model:       cfg.HFModel,
		MaxTokens:   cfg.GeneratorMaxTokens,
		Temperature: cfg.GeneratorTemperature,
		Timeout:     cfg.ProviderTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create code generator: %w", err)
	}

	if cfg.HFAPIKey == "" {
		logger.Warn("HF_API_KEY is not set, generation requests will fail until it is configured")
	}

	return &Services{
		LLM:       codeGenerator,
		Generator: generator.New(codeGenerator, userRepo, generationRepo, cfg.DefaultUsername, m),
		History:   history.NewReader(generationRepo, m),
	}, nil
}
