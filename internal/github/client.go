package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	gherrors "github.com/Didstopia/repoherd/internal/errors"
)

// client implements the Client interface
type client struct {
	ghClient *gh.Client
}

// NewClient creates a new GitHub client with the provided token
func NewClient(token string) Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &client{
		ghClient: gh.NewClient(tc),
	}
}

// ListRepositories returns all repositories for an owner using iterative
// pagination. Continuation follows the parsed Link header's "next"
// relation; the loop terminates when no next page is advertised. On any
// page error no partial results are returned.
func (c *client) ListRepositories(ctx context.Context, owner string, opts *ListOptions) ([]Repository, error) {
	if opts == nil {
		opts = VisibleListOptions()
	}

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		return nil, gherrors.NewValidationError("per-page",
			fmt.Sprintf("must be between 1 and %d (got %d)", MaxPerPage, perPage))
	}

	var allRepos []Repository
	page := 1

	for {
		req, err := c.ghClient.NewRequest("GET", listReposPath(owner, opts, perPage, page), nil)
		if err != nil {
			return nil, err
		}

		// Decode into a raw buffer first. go-github would otherwise
		// discard the body on a 2xx response of the wrong shape, and the
		// body is the only place the API's own message lives.
		var body json.RawMessage
		resp, err := c.ghClient.Do(ctx, req, &body)
		if err != nil {
			return nil, wrapAPIError(resp, err)
		}

		var repos []*gh.Repository
		if err := json.Unmarshal(body, &repos); err != nil {
			return nil, malformedPageError(resp, body, err)
		}

		for _, repo := range repos {
			// The API can surface forks and org repositories under
			// unexpected ownership; keep only the requested owner.
			if !strings.EqualFold(repo.GetOwner().GetLogin(), owner) {
				continue
			}
			if repo.GetName() == "" {
				continue
			}
			allRepos = append(allRepos, Repository{
				Name:     repo.GetName(),
				CloneURL: repo.GetCloneURL(),
				Owner:    repo.GetOwner().GetLogin(),
				Private:  repo.GetPrivate(),
				Fork:     repo.GetFork(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return allRepos, nil
}

// listReposPath builds the relative list endpoint with its query string
func listReposPath(owner string, opts *ListOptions, perPage, page int) string {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}
	if opts.Sort != "" {
		q.Set("sort", opts.Sort)
	}
	return fmt.Sprintf("users/%s/repos?%s", url.PathEscape(owner), q.Encode())
}

// DeleteRepository deletes a single repository. Success is a 204 with an
// empty body; 404 and 403 map to ErrNotFound and ErrForbidden so callers
// can distinguish a missing repository from insufficient token scope.
func (c *client) DeleteRepository(ctx context.Context, owner, name string) error {
	resp, err := c.ghClient.Repositories.Delete(ctx, owner, name)
	if err != nil {
		return wrapAPIError(resp, err)
	}
	return nil
}

// GetAuthenticatedUser returns the login associated with the token
func (c *client) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := c.ghClient.Users.Get(ctx, "")
	if err != nil {
		return "", wrapAPIError(resp, err)
	}
	return user.GetLogin(), nil
}

// wrapAPIError converts a GitHub API response error to our error type.
// It checks go-github typed errors first for accurate rate-limit
// detection, then falls back to status code mapping. The server's error
// message and the response's rate-limit headers are preserved so an
// operator can diagnose a failure without re-running.
func wrapAPIError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	rateLimit := rateLimitFrom(resp)

	// Check go-github typed errors first (most reliable for rate limiting)
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return attachRateLimit(fmt.Errorf("%w: %s", gherrors.ErrRateLimited, rateLimitErr.Message), rateLimit)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return attachRateLimit(fmt.Errorf("%w: %s", gherrors.ErrRateLimited, abuseErr.Message), rateLimit)
	}

	// Extract message from GitHub ErrorResponse if available
	apiMessage := ""
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiMessage = ghErr.Message
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	switch statusCode {
	case 401:
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrUnauthorized, apiMessage)
		}
		return gherrors.ErrUnauthorized
	case 403:
		// 403 without a typed rate-limit error is a permission denial
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrForbidden, apiMessage)
		}
		return gherrors.ErrForbidden
	case 429:
		if apiMessage != "" {
			return attachRateLimit(fmt.Errorf("%w: %s", gherrors.ErrRateLimited, apiMessage), rateLimit)
		}
		return attachRateLimit(gherrors.ErrRateLimited, rateLimit)
	case 404:
		if apiMessage != "" {
			return fmt.Errorf("%w: %s", gherrors.ErrNotFound, apiMessage)
		}
		return gherrors.ErrNotFound
	default:
		// A body that decoded but wasn't the expected shape surfaces as
		// a json error from go-github; keep the decode detail around.
		if isDecodeError(err) {
			return &gherrors.APIError{
				StatusCode: statusCode,
				Message:    gherrors.ErrMalformedResponse.Error(),
				RateLimit:  rateLimit,
				Err:        err,
			}
		}
		msg := "API request failed"
		if apiMessage != "" {
			msg = apiMessage
		}
		return &gherrors.APIError{
			StatusCode: statusCode,
			Message:    msg,
			RateLimit:  rateLimit,
			Err:        err,
		}
	}
}

// malformedPageError reports a 2xx list page whose body was valid JSON
// but not a repository array. GitHub serves some failures this way (a
// bare object with a "message" field under HTTP 200), so the body's own
// message is extracted when present; otherwise an excerpt of the raw
// body is kept for diagnosis.
func malformedPageError(resp *gh.Response, body []byte, err error) error {
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var apiMsg struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiMsg) == nil && apiMsg.Message != "" {
		return &gherrors.APIError{
			StatusCode: statusCode,
			Message:    apiMsg.Message,
			RateLimit:  rateLimitFrom(resp),
			Err:        gherrors.ErrMalformedResponse,
		}
	}

	return &gherrors.APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%s: %s", gherrors.ErrMalformedResponse.Error(), bodyExcerpt(body)),
		RateLimit:  rateLimitFrom(resp),
		Err:        err,
	}
}

// bodyExcerpt truncates a response body for inclusion in an error message
func bodyExcerpt(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// attachRateLimit wraps a rate-limit sentinel into an APIError carrying
// the header snapshot, keeping errors.Is(err, ErrRateLimited) intact
func attachRateLimit(err error, rateLimit *gherrors.RateLimitInfo) error {
	if rateLimit == nil {
		return err
	}
	return fmt.Errorf("%w (%s)", err, rateLimit)
}

// isDecodeError reports whether the error came from JSON decoding rather
// than the API itself (a valid-JSON body of an unexpected shape)
func isDecodeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr)
}
