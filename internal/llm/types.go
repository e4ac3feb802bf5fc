package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// represents different LLM providers
type Provider string

const (
	ProviderHuggingFace Provider = "huggingface"
)

// turns a prompt into source code in the requested language
type CodeGenerator interface {
	GenerateCode(ctx context.Context, req CodeRequest) (*CodeResponse, error)
	Model() string
}

type CodeRequest struct {
	Prompt   string
	Language string
}

type CodeResponse struct {
	Code  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for the code generator
type Config struct {
	Provider    Provider
	APIKey      string
	BaseURL     string // e.g., "https://router.huggingface.co"
	Route       string // inference provider behind the router, e.g., "publicai"
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

var (
	// no credential configured; nothing was sent upstream
	ErrMissingAPIKey = errors.New("provider API key is not configured")

	// the provider answered but without usable content
	ErrEmptyResponse = errors.New("empty response from provider")
)

// the provider could not be reached, timed out, or answered with a non-2xx status
type UpstreamError struct {
	StatusCode int    // 0 when no response was received
	Body       string // raw or decoded upstream error payload, if any
	Timeout    bool
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("provider request timed out: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("provider request failed with status %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("provider request failed: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
