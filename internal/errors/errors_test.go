package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("per-page", "must be between 1 and 100")

	assert.Equal(t, "per-page", err.Field)
	assert.Contains(t, err.Error(), "validation error for per-page")
	assert.Contains(t, err.Error(), "must be between 1 and 100")
}

func TestAPIError(t *testing.T) {
	t.Run("basic error message", func(t *testing.T) {
		err := NewAPIError(500, "Internal Server Error", nil)

		assert.Equal(t, 500, err.StatusCode)
		assert.Contains(t, err.Error(), "status 500")
		assert.Contains(t, err.Error(), "Internal Server Error")
	})

	t.Run("wraps underlying error", func(t *testing.T) {
		underlying := errors.New("connection refused")
		err := NewAPIError(0, "request failed", underlying)

		assert.ErrorIs(t, err, underlying)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("includes rate limit snapshot", func(t *testing.T) {
		reset := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		err := &APIError{
			StatusCode: 403,
			Message:    "API rate limit exceeded",
			RateLimit:  &RateLimitInfo{Limit: 5000, Remaining: 0, Reset: reset},
		}

		assert.Contains(t, err.Error(), "rate limit 0/5000")
		assert.Contains(t, err.Error(), "2024-06-01T12:00:00Z")
	})

	t.Run("errors.As unwrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("fetching repositories: %w", NewAPIError(502, "Bad Gateway", nil))

		var apiErr *APIError
		require.ErrorAs(t, wrapped, &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
	})
}

func TestRateLimitInfoString(t *testing.T) {
	t.Run("nil is empty", func(t *testing.T) {
		var info *RateLimitInfo
		assert.Empty(t, info.String())
	})

	t.Run("formats remaining and reset", func(t *testing.T) {
		info := &RateLimitInfo{Limit: 5000, Remaining: 4321, Reset: time.Unix(0, 0).UTC()}
		assert.Contains(t, info.String(), "4321/5000")
	})
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"sentinel error", ErrRateLimited, true},
		{"wrapped sentinel", fmt.Errorf("fetch failed: %w", ErrRateLimited), true},
		{"APIError 403 is a permission denial", NewAPIError(403, "admin rights required", nil), false},
		{"APIError 403 wrapping the sentinel", NewAPIError(403, "secondary rate limit", ErrRateLimited), true},
		{"APIError 429", NewAPIError(429, "too many requests", nil), true},
		{"APIError 404", NewAPIError(404, "not found", nil), false},
		{"unrelated error", errors.New("boom"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRateLimited(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"sentinel error", ErrNotFound, true},
		{"wrapped sentinel", fmt.Errorf("delete failed: %w", ErrNotFound), true},
		{"APIError 404", NewAPIError(404, "not found", nil), true},
		{"APIError 403", NewAPIError(403, "forbidden", nil), false},
		{"unrelated error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFound(tt.err))
		})
	}
}

func TestIsAborted(t *testing.T) {
	assert.True(t, IsAborted(ErrAborted))
	assert.True(t, IsAborted(fmt.Errorf("confirmation: %w", ErrAborted)))
	assert.False(t, IsAborted(errors.New("boom")))
}
