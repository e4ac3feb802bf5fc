package errors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/codecopilot/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	base := Wrap(KindPersistence, "failed to save generation", errors.New("boom"))
	wrapped := fmt.Errorf("handler: %w", base)

	assert.Equal(t, KindPersistence, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindPersistence))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindUnknown))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(KindInvalidRequest))

	for _, kind := range []Kind{KindConfiguration, KindProviderUnavailable, KindProviderEmptyResponse, KindPersistence, "bogus"} {
		assert.Equal(t, http.StatusInternalServerError, StatusFor(kind), kind)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(KindProviderUnavailable, "failed to generate code", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "provider_unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
}

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/generate", nil)

	Respond(c, err)

	return rec
}

func TestRespond_KeepsProviderDetails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	details := map[string]any{"status": 503, "body": "model is loading"}
	rec := respond(New(KindProviderUnavailable, "failed to generate code").WithDetails(details))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "provider_unavailable", body["error"])
	assert.Equal(t, "model is loading", body["details"].(map[string]any)["body"])
}

func TestRespond_SanitizesStoreErrorsInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	rec := respond(Wrap(KindPersistence, "failed to save generation", &pgconn.PgError{Code: "08006", Message: "secret host info"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database operation failed")
	assert.NotContains(t, rec.Body.String(), "secret host info")
}

func TestRespond_UnclassifiedError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	rec := respond(errors.New("surprise"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"server_error"`)
	assert.Contains(t, rec.Body.String(), "surprise")
}

func TestRespond_InvalidRequestOmitsDetails(t *testing.T) {
	rec := respond(New(KindInvalidRequest, "prompt and language are required"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestRespond_LogsErrorCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	ctx := logger.WithContext(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/history", nil).WithContext(ctx)

	Respond(c, Wrap(KindPersistence, "failed to fetch history", &pgconn.PgError{Code: "08006"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "category=database")
	assert.Contains(t, logs.String(), "kind=persistence_error")
}

func TestClassifyError_Categories(t *testing.T) {
	assert.Equal(t, CategoryDatabase, classifyError(&pgconn.PgError{Code: "23505"}).category)
	assert.Equal(t, CategoryNotFound, classifyError(fmt.Errorf("find: %w", pgx.ErrNoRows)).category)
	assert.Equal(t, CategoryTimeout, classifyError(context.DeadlineExceeded).category)
	assert.Equal(t, CategoryNetwork, classifyError(errors.New("dial tcp: connection refused")).category)
	assert.Equal(t, CategoryUnknown, classifyError(errors.New("surprise")).category)
}
