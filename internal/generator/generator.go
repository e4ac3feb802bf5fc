package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"codeberg.org/codecopilot/server/copilot/generations"
	apierrors "codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/llm"
	"codeberg.org/codecopilot/server/internal/metrics"
)

func New(
	provider llm.CodeGenerator,
	userResolver UserResolver,
	store GenerationStore,
	username string,
	m *metrics.Metrics,
) *Generator {
	return &Generator{
		provider: provider,
		users:    userResolver,
		store:    store,
		username: username,
		metrics:  m,
	}
}

// generates code for the prompt and stores it under the default user.
// Makes at most one provider call and, only on success, one insert.
func (g *Generator) Generate(ctx context.Context, req Request) (*generations.Generation, error) {
	record, err := g.generate(ctx, req)

	if err != nil {
		g.metrics.RecordGeneration(string(apierrors.KindOf(err)))
	} else {
		g.metrics.RecordGeneration(metrics.OutcomeSuccess)
	}

	return record, err
}

func (g *Generator) generate(ctx context.Context, req Request) (*generations.Generation, error) {
	prompt := strings.TrimSpace(req.Prompt)
	language := strings.TrimSpace(req.Language)

	if prompt == "" || language == "" {
		return nil, apierrors.New(apierrors.KindInvalidRequest, "prompt and language are required")
	}

	if g.provider == nil {
		return nil, apierrors.New(apierrors.KindConfiguration, "code generator is not configured")
	}

	if g.username == "" {
		return nil, apierrors.New(apierrors.KindConfiguration, "default username is not configured")
	}

	start := time.Now()

	resp, err := g.provider.GenerateCode(ctx, llm.CodeRequest{
		Prompt:   prompt,
		Language: language,
	})

	if err != nil {
		classified := providerError(err)
		g.metrics.ObserveProviderCall(string(classified.Kind), time.Since(start))
		return nil, classified
	}

	g.metrics.ObserveProviderCall(metrics.OutcomeSuccess, time.Since(start))
	g.metrics.RecordTokens(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	// providers are expected to trim, but a blank artifact must never be stored
	code := strings.TrimSpace(resp.Code)
	if code == "" {
		return nil, apierrors.Wrap(apierrors.KindProviderEmptyResponse, "empty response from provider", llm.ErrEmptyResponse)
	}

	user, err := g.users.EnsureByUsername(ctx, g.username)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.KindPersistence, "failed to resolve default user", err)
	}

	record, err := g.store.Create(ctx, generations.CreateParams{
		Prompt:   prompt,
		Language: language,
		Code:     code,
		UserID:   user.ID,
	})

	if err != nil {
		return nil, apierrors.Wrap(apierrors.KindPersistence, "failed to save generation", err)
	}

	return record, nil
}

// maps provider failures onto the error taxonomy
func providerError(err error) *apierrors.Error {
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return apierrors.Wrap(apierrors.KindConfiguration, "HF_API_KEY is missing", err)
	}

	if errors.Is(err, llm.ErrEmptyResponse) {
		return apierrors.Wrap(apierrors.KindProviderEmptyResponse, "empty response from provider", err)
	}

	details := ProviderDetails{Message: err.Error()}

	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		details.Status = upstream.StatusCode
		details.Body = upstream.Body
		details.Timeout = upstream.Timeout
	}

	return apierrors.Wrap(apierrors.KindProviderUnavailable, "failed to generate code", err).WithDetails(details)
}
