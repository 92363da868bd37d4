package github

import (
	gh "github.com/google/go-github/v68/github"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

// rateLimitFrom builds a diagnostic snapshot from the rate-limit headers
// of an API response. The snapshot is surfaced in errors for operator
// diagnosis; repoherd never waits or retries based on it.
func rateLimitFrom(resp *gh.Response) *gherrors.RateLimitInfo {
	if resp == nil {
		return nil
	}
	if resp.Rate.Limit == 0 && resp.Rate.Remaining == 0 && resp.Rate.Reset.Time.IsZero() {
		return nil
	}
	return &gherrors.RateLimitInfo{
		Limit:     resp.Rate.Limit,
		Remaining: resp.Rate.Remaining,
		Reset:     resp.Rate.Reset.Time,
	}
}
