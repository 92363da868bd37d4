// Package errors provides custom error types for repoherd
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrMissingOwner      = errors.New("missing required argument 'owner'")
	ErrMissingToken      = errors.New("missing required argument 'token' (set --token or GITHUB_TOKEN)")
	ErrMissingTarget     = errors.New("missing required argument 'target directory'")
	ErrRateLimited       = errors.New("GitHub API rate limit exceeded")
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized: invalid or expired token")
	ErrForbidden         = errors.New("forbidden: token lacks required scope")
	ErrMalformedResponse = errors.New("malformed API response")
	ErrAborted           = errors.New("aborted by user")
	ErrPartialFailure    = errors.New("one or more items failed")
)

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RateLimitInfo is a snapshot of the rate limit headers from an API
// response. It is attached to errors for operator diagnosis only and
// never acted upon automatically.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

func (r *RateLimitInfo) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("rate limit %d/%d, resets %s", r.Remaining, r.Limit, r.Reset.Format(time.RFC3339))
}

// APIError represents a GitHub API error
type APIError struct {
	StatusCode int
	Message    string
	RateLimit  *RateLimitInfo
	Err        error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.RateLimit != nil {
		msg = fmt.Sprintf("%s (%s)", msg, e.RateLimit)
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string, err error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Err: err}
}

// IsRateLimited checks if the error is a rate limit error. A plain 403
// is a permission denial, not throttling; rate-limited 403s are mapped
// to ErrRateLimited at the API layer and match through errors.Is.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == 429 {
		return true
	}
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrNotFound)
}

// IsAborted checks if the error is a user abort
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
