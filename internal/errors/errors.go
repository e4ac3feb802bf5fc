package errors

import (
	"errors"
	"fmt"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.Respond() for any error returned by a service. It maps the
//     Kind to a status code, logs 5xx responses and writes the JSON body
//   - Use errors.BadRequest() for binding failures before a service is called
//   - Never log and then call Respond() for the same error
//
// For services/repositories/internal packages:
//   - Repositories return wrapped errors with fmt.Errorf("context: %w", err)
//   - Services classify them with errors.Wrap(kind, message, err)
//   - Do not log errors in non-handler code (avoid double logging)

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// attaches diagnostic details to the error
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// creates a classified error without an underlying cause
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// classifies an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// returns the kind of the first classified error in the chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// returns the HTTP status code for a kind
func StatusFor(kind Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}

	return kindStatus[KindUnknown]
}
