package errors

import "net/http"

// identifies which part of the request lifecycle failed
type Kind string

const (
	KindInvalidRequest        Kind = "invalid_request"
	KindConfiguration         Kind = "configuration_error"
	KindProviderUnavailable   Kind = "provider_unavailable"
	KindProviderEmptyResponse Kind = "provider_empty_response"
	KindPersistence           Kind = "persistence_error"
	KindUnknown               Kind = "server_error"
)

// HTTP status for each kind. Only caller errors are 4xx.
var kindStatus = map[Kind]int{
	KindInvalidRequest:        http.StatusBadRequest,
	KindConfiguration:         http.StatusInternalServerError,
	KindProviderUnavailable:   http.StatusInternalServerError,
	KindProviderEmptyResponse: http.StatusInternalServerError,
	KindPersistence:           http.StatusInternalServerError,
	KindUnknown:               http.StatusInternalServerError,
}

// a classified failure returned by the core services
type Error struct {
	Kind    Kind
	Message string
	Details any // upstream diagnostics, safe to show operators
	Err     error
}

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error kind (e.g., "invalid_request")
	Message string `json:"message"`           // user-friendly message
	Details any    `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}
