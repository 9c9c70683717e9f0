// Package apierrors provides shared error types for the Everify client.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error names returned by the Everify API.
const (
	NameInvalidBody                   = "InvalidBodyError"
	NameNoProjectFound                = "NoProjectFoundError"
	NameInternalVerificationStart     = "InternalVerificationStartError"
	NameNoCurrentlyActiveVerification = "NoCurrentlyActiveVerificationError"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidBody is returned when the server rejects the request body.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrNoProjectFound is returned when the API key does not resolve to a project.
	ErrNoProjectFound = errors.New("no project found for API key")

	// ErrInternalVerificationStart is returned when the server fails to start a verification.
	ErrInternalVerificationStart = errors.New("internal error starting verification")

	// ErrNoCurrentlyActiveVerification is returned when the phone number has no pending verification.
	ErrNoCurrentlyActiveVerification = errors.New("no currently active verification")

	// ErrMissingErrorName is returned by FromPayload when the payload has no name.
	ErrMissingErrorName = errors.New("error payload has no name")
)

var sentinelsByName = map[string]error{
	NameInvalidBody:                   ErrInvalidBody,
	NameNoProjectFound:                ErrNoProjectFound,
	NameInternalVerificationStart:     ErrInternalVerificationStart,
	NameNoCurrentlyActiveVerification: ErrNoCurrentlyActiveVerification,
}

// APIError is a structured error returned by the Everify API as a
// {name, message, ...} JSON payload.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	// Fields holds every payload key other than name and message.
	Fields map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Name, e.Message)
	}
	return e.Name
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	sentinel, ok := sentinelsByName[e.Name]
	return ok && target == sentinel
}

// FromPayload builds an APIError from a server error body. name and
// message are lifted out, the remaining keys are copied verbatim into
// Fields.
func FromPayload(statusCode int, body []byte) (*APIError, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode error payload: %w", err)
	}

	name, _ := payload["name"].(string)
	if name == "" {
		return nil, ErrMissingErrorName
	}

	var message string
	switch m := payload["message"].(type) {
	case nil:
	case string:
		message = m
	default:
		message = fmt.Sprint(m)
	}

	delete(payload, "name")
	delete(payload, "message")

	return &APIError{
		StatusCode: statusCode,
		Name:       name,
		Message:    message,
		Fields:     payload,
	}, nil
}

// ResponseError is a failure response that could not be read as an API
// error payload, e.g. an HTML page from a proxy.
type ResponseError struct {
	StatusCode  int
	ContentType string
	Body        string
	Err         error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid server response: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("invalid server response: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the underlying error.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
