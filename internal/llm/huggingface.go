package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// calls the Hugging Face inference router through its OpenAI-compatible
// chat completions API
type HuggingFaceGenerator struct {
	config Config
	client *openai.Client
}

func NewHuggingFaceGenerator(config Config) *HuggingFaceGenerator {
	config = config.withDefaults()

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.endpoint()
	clientConfig.HTTPClient = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}

	return &HuggingFaceGenerator{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (g *HuggingFaceGenerator) Model() string {
	return g.config.Model
}

// sends exactly one chat completion request, bounded by the configured timeout
func (g *HuggingFaceGenerator) GenerateCode(ctx context.Context, req CodeRequest) (*CodeResponse, error) {
	if g.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req.Language)},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req.Prompt)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: requestTemperature(g.config.Temperature),
	})
	if err != nil {
		return nil, classifyError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	code := strings.TrimSpace(resp.Choices[0].Message.Content)
	if code == "" {
		return nil, ErrEmptyResponse
	}

	model := resp.Model
	if model == "" {
		model = g.config.Model
	}

	return &CodeResponse{
		Code:  code,
		Model: model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}

// go-openai omits a zero temperature from the request body, which leaves the
// provider on its default sampling
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}

	return t
}

// separates "no usable content" from transport and upstream failures
func classifyError(ctx context.Context, err error) error {
	// checked first: a non-OpenAI error body ({"error":"..."}) comes back as a
	// RequestError wrapping an empty APIError
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body), Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}

	// a 2xx answer whose body is not a chat completion
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return errors.Join(ErrEmptyResponse, err)
	}

	timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}

	return &UpstreamError{Timeout: timeout, Err: err}
}
