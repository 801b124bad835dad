/* test_mocks.go
 * Contains mock implementations of the Fetcher and store Interface for use in tests across
 * packages
 */

package api

import (
	"context"
	"fmt"

	"cf-faceoff/api/external"
	"cf-faceoff/api/shared"
	"cf-faceoff/api/store"
)

// MockFetcher implements external.Fetcher with canned data keyed by handle
type MockFetcher struct {
	Users           map[string]shared.User
	Submissions     map[string][]shared.Submission
	RatingHistories map[string][]shared.RatingChange
	// Err, when set, is returned by every call
	Err error
}

// Ensure MockFetcher implements external.Fetcher
var _ external.Fetcher = (*MockFetcher)(nil)

func (m *MockFetcher) FetchUser(ctx context.Context, handle string) (*shared.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	user, ok := m.Users[handle]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", handle, external.ErrUserNotFound)
	}
	return &user, nil
}

func (m *MockFetcher) FetchSubmissions(ctx context.Context, handle string) ([]shared.Submission, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Submissions[handle], nil
}

func (m *MockFetcher) FetchRatingHistory(ctx context.Context, handle string) ([]shared.RatingChange, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.RatingHistories[handle], nil
}

func (m *MockFetcher) FetchUsers(ctx context.Context, handles []string) ([]shared.User, error) {
	users := make([]shared.User, 0, len(handles))
	for _, handle := range handles {
		user, err := m.FetchUser(ctx, handle)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// MockStore implements store.Interface, recording logged visits in memory
type MockStore struct {
	Visits   []store.Visit
	Stats    store.VisitorStats
	LogErr   error
	StatsErr error
}

// Ensure MockStore implements store.Interface
var _ store.Interface = (*MockStore)(nil)

func (m *MockStore) LogVisit(visit store.Visit) error {
	if m.LogErr != nil {
		return m.LogErr
	}
	m.Visits = append(m.Visits, visit)
	return nil
}

func (m *MockStore) GetVisitorStats() (store.VisitorStats, error) {
	if m.StatsErr != nil {
		return store.VisitorStats{}, m.StatsErr
	}
	return m.Stats, nil
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return nil
}

func (m *MockStore) GetClient() interface {
	Disconnect(context.Context) error
} {
	return nil
}
