package everify

import (
	"errors"
	"fmt"

	"github.com/everify/everify-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrInvalidPhoneNumber is returned when phone normalization is enabled
	// and a phone number cannot be parsed or validated.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrUnsupportedMethod is returned when StartVerification is given a
	// delivery method the API does not offer.
	ErrUnsupportedMethod = errors.New("unsupported verification method")

	// ErrInvalidBody is returned when the server rejects the request body.
	ErrInvalidBody = apierrors.ErrInvalidBody

	// ErrNoProjectFound is returned when the API key does not resolve to a
	// registered project.
	ErrNoProjectFound = apierrors.ErrNoProjectFound

	// ErrInternalVerificationStart is returned when the server fails to
	// start a verification.
	ErrInternalVerificationStart = apierrors.ErrInternalVerificationStart

	// ErrNoCurrentlyActiveVerification is returned when there is no pending
	// verification for the phone number.
	ErrNoCurrentlyActiveVerification = apierrors.ErrNoCurrentlyActiveVerification

	// ErrTransport matches every transport-level failure: network errors,
	// timeouts and failure responses that are not API error payloads.
	ErrTransport = errors.New("transport error")
)

// ErrorKind discriminates the failures an Everify call can return.
type ErrorKind string

const (
	KindInvalidBody                   ErrorKind = apierrors.NameInvalidBody
	KindNoProjectFound                ErrorKind = apierrors.NameNoProjectFound
	KindInternalVerificationStart     ErrorKind = apierrors.NameInternalVerificationStart
	KindNoCurrentlyActiveVerification ErrorKind = apierrors.NameNoCurrentlyActiveVerification
	// KindUnknown is an API error whose name this SDK does not know. The
	// server's name is still available in Error.Name.
	KindUnknown ErrorKind = "Unknown"
	// KindTransport is a network failure or a failure response that is
	// not an API error payload.
	KindTransport ErrorKind = "Transport"
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidBody:                   ErrInvalidBody,
	KindNoProjectFound:                ErrNoProjectFound,
	KindInternalVerificationStart:     ErrInternalVerificationStart,
	KindNoCurrentlyActiveVerification: ErrNoCurrentlyActiveVerification,
	KindTransport:                     ErrTransport,
}

// Error is returned by every Everify API call that fails after a request
// was attempted. Arguments rejected before any request is made return a
// plain sentinel such as ErrMissingAPIKey or ErrInvalidPhoneNumber.
//
// API errors carry the server's name and message plus any extra payload
// keys in Fields. Transport errors carry the HTTP status and raw body
// when a response was received, or the underlying network error in Err.
type Error struct {
	Kind       ErrorKind
	Name       string
	Message    string
	StatusCode int
	Fields     map[string]any

	Body string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == KindTransport {
		switch {
		case e.Err != nil && e.StatusCode != 0:
			return fmt.Sprintf("everify: invalid server response: status %d: %v", e.StatusCode, e.Err)
		case e.Err != nil:
			return fmt.Sprintf("everify: network error: %v", e.Err)
		default:
			return fmt.Sprintf("everify: invalid server response: status %d: %s", e.StatusCode, e.Body)
		}
	}
	if e.Message != "" {
		return fmt.Sprintf("everify: %s: %s", e.Name, e.Message)
	}
	return "everify: " + e.Name
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// IsDomain reports whether the error was declared by the Everify API
// rather than raised by the transport.
func (e *Error) IsDomain() bool {
	return e.Kind != KindTransport
}

// Field returns an extra field from the API error payload.
func (e *Error) Field(key string) (any, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

func kindFromName(name string) ErrorKind {
	kind := ErrorKind(name)
	if _, ok := kindSentinels[kind]; ok && kind != KindTransport {
		return kind
	}
	return KindUnknown
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Kind:       kindFromName(apiErr.Name),
			Name:       apiErr.Name,
			Message:    apiErr.Message,
			StatusCode: apiErr.StatusCode,
			Fields:     apiErr.Fields,
		}
	}

	var respErr *apierrors.ResponseError
	if errors.As(err, &respErr) {
		return &Error{
			Kind:       KindTransport,
			Name:       string(KindTransport),
			Message:    respErr.Error(),
			StatusCode: respErr.StatusCode,
			Body:       respErr.Body,
			Err:        respErr.Err,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &Error{
			Kind:    KindTransport,
			Name:    string(KindTransport),
			Message: netErr.Error(),
			Err:     netErr.Err,
		}
	}

	return err
}
