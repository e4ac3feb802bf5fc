package generator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/copilot/users"
	apierrors "codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/llm"
	"codeberg.org/codecopilot/server/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements llm.CodeGenerator for testing
type mockProvider struct {
	generateCodeFunc func(ctx context.Context, req llm.CodeRequest) (*llm.CodeResponse, error)

	mu    sync.Mutex
	calls []llm.CodeRequest
}

func (m *mockProvider) GenerateCode(ctx context.Context, req llm.CodeRequest) (*llm.CodeResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.generateCodeFunc != nil {
		return m.generateCodeFunc(ctx, req)
	}

	return &llm.CodeResponse{Code: "print('hi')", Model: "mock-model"}, nil
}

func (m *mockProvider) Model() string {
	return "mock-model"
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.calls)
}

// implements UserResolver for testing
type mockUsers struct {
	ensureFunc func(ctx context.Context, username string) (*users.User, error)
	usernames  []string
}

func (m *mockUsers) EnsureByUsername(ctx context.Context, username string) (*users.User, error) {
	m.usernames = append(m.usernames, username)

	if m.ensureFunc != nil {
		return m.ensureFunc(ctx, username)
	}

	return &users.User{ID: "user-1", Username: username}, nil
}

// in-memory GenerationStore that assigns ids and timestamps like the database
type memoryStore struct {
	createErr error
	records   []generations.Generation
}

func (s *memoryStore) Create(_ context.Context, params generations.CreateParams) (*generations.Generation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	record := generations.Generation{
		ID:        "gen-" + string(rune('a'+len(s.records))),
		Prompt:    params.Prompt,
		Language:  params.Language,
		Code:      params.Code,
		Timestamp: time.Now().UTC(),
		UserID:    params.UserID,
	}
	s.records = append(s.records, record)

	return &record, nil
}

func newTestGenerator(provider llm.CodeGenerator, resolver UserResolver, store GenerationStore) *Generator {
	return New(provider, resolver, store, "demo_user", nil)
}

func TestGenerate_PersistsTrimmedCode(t *testing.T) {
	provider := &mockProvider{
		generateCodeFunc: func(_ context.Context, req llm.CodeRequest) (*llm.CodeResponse, error) {
			assert.Equal(t, "reverse a list", req.Prompt)
			assert.Equal(t, "Python", req.Language)

			return &llm.CodeResponse{Code: "\n  def rev(xs): return xs[::-1]  \n"}, nil
		},
	}
	resolver := &mockUsers{}
	store := &memoryStore{}

	record, err := newTestGenerator(provider, resolver, store).Generate(context.Background(), Request{
		Prompt:   "  reverse a list ",
		Language: "Python",
	})

	require.NoError(t, err)
	assert.Equal(t, "def rev(xs): return xs[::-1]", record.Code)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Timestamp.IsZero())
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "reverse a list", record.Prompt)

	assert.Equal(t, 1, provider.callCount())
	assert.Equal(t, []string{"demo_user"}, resolver.usernames)
	assert.Len(t, store.records, 1)
}

func TestGenerate_InvalidRequestWritesNothing(t *testing.T) {
	cases := map[string]Request{
		"empty prompt":   {Prompt: "", Language: "go"},
		"blank prompt":   {Prompt: " \n\t ", Language: "go"},
		"empty language": {Prompt: "sort ints", Language: ""},
		"blank language": {Prompt: "sort ints", Language: "   "},
		"both missing":   {},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			provider := &mockProvider{}
			resolver := &mockUsers{}
			store := &memoryStore{}

			_, err := newTestGenerator(provider, resolver, store).Generate(context.Background(), req)

			require.Error(t, err)
			assert.True(t, apierrors.IsKind(err, apierrors.KindInvalidRequest), "got %v", err)
			assert.Zero(t, provider.callCount())
			assert.Empty(t, resolver.usernames)
			assert.Empty(t, store.records)
		})
	}
}

func TestGenerate_MissingCredentialIsConfigurationError(t *testing.T) {
	provider := &mockProvider{
		generateCodeFunc: func(context.Context, llm.CodeRequest) (*llm.CodeResponse, error) {
			return nil, llm.ErrMissingAPIKey
		},
	}
	store := &memoryStore{}

	_, err := newTestGenerator(provider, &mockUsers{}, store).Generate(context.Background(), Request{
		Prompt: "p", Language: "go",
	})

	assert.True(t, apierrors.IsKind(err, apierrors.KindConfiguration), "got %v", err)
	assert.Empty(t, store.records)
}

func TestGenerate_NoProviderIsConfigurationError(t *testing.T) {
	_, err := New(nil, &mockUsers{}, &memoryStore{}, "demo_user", nil).Generate(context.Background(), Request{
		Prompt: "p", Language: "go",
	})

	assert.True(t, apierrors.IsKind(err, apierrors.KindConfiguration), "got %v", err)
}

func TestGenerate_EmptyCompletionIsNotStored(t *testing.T) {
	cases := map[string]func(context.Context, llm.CodeRequest) (*llm.CodeResponse, error){
		"provider reports empty": func(context.Context, llm.CodeRequest) (*llm.CodeResponse, error) {
			return nil, llm.ErrEmptyResponse
		},
		"provider returns blank code": func(context.Context, llm.CodeRequest) (*llm.CodeResponse, error) {
			return &llm.CodeResponse{Code: "   "}, nil
		},
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			resolver := &mockUsers{}
			store := &memoryStore{}

			_, err := newTestGenerator(&mockProvider{generateCodeFunc: fn}, resolver, store).Generate(
				context.Background(), Request{Prompt: "p", Language: "go"},
			)

			assert.True(t, apierrors.IsKind(err, apierrors.KindProviderEmptyResponse), "got %v", err)
			assert.Empty(t, resolver.usernames, "principal must not be resolved for a failed generation")
			assert.Empty(t, store.records)
		})
	}
}

func TestGenerate_UpstreamFailureCarriesDiagnostics(t *testing.T) {
	upstream := &llm.UpstreamError{StatusCode: 502, Body: `{"error":"bad gateway"}`, Err: errors.New("status 502")}
	provider := &mockProvider{
		generateCodeFunc: func(context.Context, llm.CodeRequest) (*llm.CodeResponse, error) {
			return nil, upstream
		},
	}
	store := &memoryStore{}

	_, err := newTestGenerator(provider, &mockUsers{}, store).Generate(context.Background(), Request{
		Prompt: "p", Language: "go",
	})

	var classified *apierrors.Error
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, apierrors.KindProviderUnavailable, classified.Kind)
	assert.ErrorIs(t, err, upstream)

	details, ok := classified.Details.(ProviderDetails)
	require.True(t, ok)
	assert.Equal(t, 502, details.Status)
	assert.Contains(t, details.Body, "bad gateway")
	assert.Empty(t, store.records)
	assert.Equal(t, 1, provider.callCount(), "provider failures are not retried")
}

func TestGenerate_TimeoutIsProviderUnavailable(t *testing.T) {
	provider := &mockProvider{
		generateCodeFunc: func(ctx context.Context, _ llm.CodeRequest) (*llm.CodeResponse, error) {
			<-ctx.Done()
			return nil, &llm.UpstreamError{Timeout: true, Err: ctx.Err()}
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestGenerator(provider, &mockUsers{}, &memoryStore{}).Generate(ctx, Request{
		Prompt: "p", Language: "go",
	})

	var classified *apierrors.Error
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, apierrors.KindProviderUnavailable, classified.Kind)
	assert.True(t, classified.Details.(ProviderDetails).Timeout)
}

func TestGenerate_PersistenceFailures(t *testing.T) {
	t.Run("user resolution fails", func(t *testing.T) {
		resolver := &mockUsers{
			ensureFunc: func(context.Context, string) (*users.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		store := &memoryStore{}

		_, err := newTestGenerator(&mockProvider{}, resolver, store).Generate(context.Background(), Request{
			Prompt: "p", Language: "go",
		})

		assert.True(t, apierrors.IsKind(err, apierrors.KindPersistence), "got %v", err)
		assert.Empty(t, store.records)
	})

	t.Run("insert fails", func(t *testing.T) {
		provider := &mockProvider{}
		store := &memoryStore{createErr: errors.New("failed to insert generation: database is down")}

		_, err := newTestGenerator(provider, &mockUsers{}, store).Generate(context.Background(), Request{
			Prompt: "p", Language: "go",
		})

		assert.True(t, apierrors.IsKind(err, apierrors.KindPersistence), "got %v", err)
		assert.Equal(t, 1, provider.callCount(), "provider output is not regenerated after a store failure")
	})
}

func TestGenerate_RecordsOutcomeMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	gen := New(&mockProvider{}, &mockUsers{}, &memoryStore{}, "demo_user", m)

	_, err := gen.Generate(context.Background(), Request{Prompt: "p", Language: "go"})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), Request{Prompt: "", Language: "go"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(string(apierrors.KindInvalidRequest))))
}
