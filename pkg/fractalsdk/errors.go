package fractalsdk

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fractalglobal/fgc/pkg/httpx"
)

// ============================================================================
// API Error Codes
// ============================================================================

const (
	CodeUnauthorized = "unauthorized"
	CodeBadRequest   = "bad_request"
	CodeNotFound     = "not_found"
	CodeClientError  = "client_error"
	CodeServerError  = "server_error"
)

// codeForStatus maps a non-200 status to its error code. 202 is how the API
// reports validation failures, so it is an error and not a success.
func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusAccepted:
		return CodeClientError
	default:
		return CodeServerError
	}
}

// ============================================================================
// APIError - errors classified from a server response
// ============================================================================

// APIError is a non-200 response from the Fractal API. Message is the
// message field of the response body, verbatim.
//
// It is used both by the SDK (to represent failures) and by servers speaking
// the same protocol (to write them).
type APIError struct {
	// StatusCode is the HTTP status of the response
	StatusCode int

	// Code is derived from StatusCode (see the Code* constants)
	Code string

	// Message is the server supplied, human readable description
	Message string
}

// NewAPIError builds an APIError for the status, classifying it.
func NewAPIError(status int, message string) *APIError {
	return &APIError{
		StatusCode: status,
		Code:       codeForStatus(status),
		Message:    message,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("fractal: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Is reports whether target is an APIError with the same code, so callers
// can write errors.Is(err, fractalsdk.ErrNotFound).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WriteError writes this error as a ResponseDTO with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ResponseDTO{Message: e.Message})
}

// ============================================================================
// Predefined API Errors
// ============================================================================

var (
	// ErrUnauthorized matches 401 responses: bad credentials, a bad token or
	// a token the server refuses for the operation.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Message:    "unauthorized",
	}

	// ErrBadRequest matches 400 responses.
	ErrBadRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Message:    "bad request",
	}

	// ErrNotFound matches 404 responses.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Message:    "not found",
	}

	// ErrClientError matches 202 responses, which the API uses for
	// validation failures such as a taken username or insufficient funds.
	ErrClientError = &APIError{
		StatusCode: http.StatusAccepted,
		Code:       CodeClientError,
		Message:    "request rejected",
	}

	// ErrServerError matches every other status.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeServerError,
		Message:    "internal server error",
	}
)

// ============================================================================
// Local Errors - raised before any request is sent
// ============================================================================

var (
	// ErrInvalidSecret is returned by Token when the secret is not the
	// base64 encoding of exactly SecretLen bytes.
	ErrInvalidSecret = errors.New("fractal: invalid client secret")

	// ErrEmptyScopes is returned when building an AccessToken without scopes.
	ErrEmptyScopes = errors.New("fractal: access token has no scopes")

	// ErrForbiddenScope means the token lacks the scope the operation needs.
	ErrForbiddenScope = errors.New("fractal: token scope does not permit this operation")

	// ErrTokenExpired means the token expired before the operation was sent.
	ErrTokenExpired = errors.New("fractal: access token has expired")
)

// AuthorizationError is returned when the local scope check for an
// operation fails. No request is sent when this is returned.
type AuthorizationError struct {
	// Operation is the endpoint name, e.g. "get_user"
	Operation string

	// Err is ErrForbiddenScope or ErrTokenExpired
	Err error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("fractal: %s: %v", e.Operation, e.Err)
}

func (e *AuthorizationError) Unwrap() error { return e.Err }

// ============================================================================
// Transport and Decoding Errors
// ============================================================================

// TransportError is returned when the request could not be exchanged with
// the server, after the single automatic retry.
type TransportError struct {
	// Attempts is the number of times the request was sent
	Attempts int

	// Err is the last underlying error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fractal: transport failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when a response body is not the JSON the
// operation expects. This includes error bodies that are not a ResponseDTO.
type DecodeError struct {
	// StatusCode is the status of the response that failed to decode
	StatusCode int

	// Err is the underlying JSON error
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fractal: failed to decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FromDTOError is returned when a decoded DTO cannot be converted into its
// domain type, e.g. a token without scopes or with an unknown token type.
type FromDTOError struct {
	Field  string
	Reason string
}

func (e *FromDTOError) Error() string {
	return fmt.Sprintf("fractal: invalid %s: %s", e.Field, e.Reason)
}
