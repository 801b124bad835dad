/* codeforces.go
 * Contains the logic used to fetch data from the Codeforces REST api and return the decoded
 * results to the higher level functions. All requests go through a single shared rate limiter
 * so calls are spaced out regardless of which user they belong to
 */

package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cf-faceoff/api/shared"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Codeforces API root
const DefaultBaseURL = "https://codeforces.com/api"

// minRequestInterval is the minimum spacing between any two upstream requests.
// Codeforces throttles aggressively, so every call system-wide shares this gate.
const minRequestInterval = 2 * time.Second

// submissionFetchCount is how many submissions user.status is asked for. The
// API caps result size rather than paginating here, matching the upstream UI.
const submissionFetchCount = 10000

// Client fetches user data from the Codeforces API. The zero value is not
// usable; construct with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Codeforces API client. An empty baseURL selects the
// public API root.
// Preconditions: Receives string containing the API base URL, or ""
// Postconditions: Returns a pointer to a Client with the shared rate limiter initialised
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(minRequestInterval), 1),
	}
}

// FetchUser gets the profile snapshot for a handle via user.info
// Preconditions: Receives a context and a non empty handle string
// Postconditions: Returns pointer to the User, ErrUserNotFound if the handle does not exist,
// or an error if the request fails
func (c *Client) FetchUser(ctx context.Context, handle string) (*shared.User, error) {
	if handle == "" {
		return nil, fmt.Errorf("no handle provided")
	}

	params := url.Values{}
	params.Set("handles", handle)

	var users []shared.User
	if err := c.get(ctx, "user.info", params, &users); err != nil {
		// user.info only fails for an unknown handle, so the whole failure
		// class maps to not-found rather than an upstream fault
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return nil, fmt.Errorf("user '%s': %w", handle, ErrUserNotFound)
		}
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user '%s': %w", handle, ErrUserNotFound)
	}

	return &users[0], nil
}

// FetchSubmissions gets all judged attempts for a handle via user.status
// Preconditions: Receives a context and a non empty handle string
// Postconditions: Returns slice of Submissions (possibly empty) or an error if it occurs
func (c *Client) FetchSubmissions(ctx context.Context, handle string) ([]shared.Submission, error) {
	if handle == "" {
		return nil, fmt.Errorf("no handle provided")
	}

	params := url.Values{}
	params.Set("handle", handle)
	params.Set("from", "1")
	params.Set("count", fmt.Sprintf("%d", submissionFetchCount))

	var submissions []shared.Submission
	if err := c.get(ctx, "user.status", params, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// FetchRatingHistory gets the contest rating changes for a handle via user.rating
// Preconditions: Receives a context and a non empty handle string
// Postconditions: Returns slice of RatingChanges ordered oldest to newest, or an error if it occurs
func (c *Client) FetchRatingHistory(ctx context.Context, handle string) ([]shared.RatingChange, error) {
	if handle == "" {
		return nil, fmt.Errorf("no handle provided")
	}

	params := url.Values{}
	params.Set("handle", handle)

	var changes []shared.RatingChange
	if err := c.get(ctx, "user.rating", params, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// FetchUsers gets profile snapshots for several handles. Requests are issued
// one at a time; the shared limiter spaces them out, so latency grows linearly
// with the number of handles.
// Preconditions: Receives a context and a non empty slice of handle strings
// Postconditions: Returns slice of Users in input order, or the first error encountered
func (c *Client) FetchUsers(ctx context.Context, handles []string) ([]shared.User, error) {
	if len(handles) == 0 {
		return nil, fmt.Errorf("no handles provided")
	}

	users := make([]shared.User, 0, len(handles))
	for _, handle := range handles {
		user, err := c.FetchUser(ctx, handle)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// get performs one rate limited GET against the API and decodes the result
// list into out. A FAILED envelope becomes an UpstreamError carrying the
// upstream comment.
func (c *Client) get(ctx context.Context, method string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, method, params.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	request.Header.Set("User-Agent", "cf-faceoff/1.0")

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response body: %w", method, err)
	}

	// Codeforces returns a JSON envelope even for HTTP 400s, so decode before
	// checking the status code
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if response.StatusCode != http.StatusOK {
			return &UpstreamError{Method: method, Comment: fmt.Sprintf("status code %d", response.StatusCode)}
		}
		return fmt.Errorf("error parsing %s response: %w", method, err)
	}

	if env.Status != statusOK {
		return &UpstreamError{Method: method, Comment: env.Comment}
	}
	if len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("error parsing %s result: %w", method, err)
	}
	return nil
}
