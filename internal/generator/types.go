package generator

import (
	"context"

	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/llm"
	"codeberg.org/codecopilot/server/internal/metrics"
)

// resolves the principal that owns new generations
type UserResolver interface {
	EnsureByUsername(ctx context.Context, username string) (*users.User, error)
}

// persists a finished generation
type GenerationStore interface {
	Create(ctx context.Context, params generations.CreateParams) (*generations.Generation, error)
}

// orchestrates validation, the provider call and persistence
type Generator struct {
	provider llm.CodeGenerator
	users    UserResolver
	store    GenerationStore
	username string
	metrics  *metrics.Metrics
}

type Request struct {
	Prompt   string
	Language string
}

// upstream diagnostics returned to operators with provider failures
type ProviderDetails struct {
	Status  int    `json:"status,omitempty"`
	Body    string `json:"body,omitempty"`
	Timeout bool   `json:"timeout,omitempty"`
	Message string `json:"message"`
}
