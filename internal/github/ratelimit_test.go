package github

import (
	"net/http"
	"testing"
	"time"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitFrom(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Nil(t, rateLimitFrom(nil))
	})

	t.Run("response without rate headers", func(t *testing.T) {
		resp := &gh.Response{
			Response: &http.Response{StatusCode: 200},
		}
		assert.Nil(t, rateLimitFrom(resp))
	})

	t.Run("response with rate headers", func(t *testing.T) {
		reset := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		resp := &gh.Response{
			Response: &http.Response{StatusCode: 403},
			Rate: gh.Rate{
				Limit:     5000,
				Remaining: 0,
				Reset:     gh.Timestamp{Time: reset},
			},
		}

		info := rateLimitFrom(resp)
		require.NotNil(t, info)
		assert.Equal(t, 5000, info.Limit)
		assert.Equal(t, 0, info.Remaining)
		assert.Equal(t, reset, info.Reset)
	})
}
