/* client_interface.go
 * Contains the Fetcher interface for dependency injection and testing
 */

package external

import (
	"context"

	"cf-faceoff/api/shared"
)

// Fetcher defines the upstream operations the rest of the application uses.
// This allows for mocking in tests.
type Fetcher interface {
	FetchUser(ctx context.Context, handle string) (*shared.User, error)
	FetchSubmissions(ctx context.Context, handle string) ([]shared.Submission, error)
	FetchRatingHistory(ctx context.Context, handle string) ([]shared.RatingChange, error)
	FetchUsers(ctx context.Context, handles []string) ([]shared.User, error)
}

// Ensure Client implements Fetcher
var _ Fetcher = (*Client)(nil)
