/* api.go
 * This file contains the public methods for interacting with this package. For consistent
 * results, callers should go through these methods rather than the sub packages for external,
 * logic and store directly
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cf-faceoff/api/external"
	"cf-faceoff/api/logic"
	"cf-faceoff/api/shared"
	"cf-faceoff/api/store"
)

// API provides methods for interacting with the profile statistics data layer
type API struct {
	CF    external.Fetcher
	Store store.Interface
}

// NewAPI creates a new API instance with the provided configuration. An empty
// cfBaseURL selects the public Codeforces API.
// Preconditions: Receives strings containing dbName, mongoURI and cfBaseURL
// Postconditions: Returns pointer to the API object, or error if the store cannot be initialised
func NewAPI(dbName string, mongoURI string, cfBaseURL string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		CF:    external.NewClient(cfBaseURL),
		Store: s,
	}, nil
}

// GetUserStats fetches profile, submissions and rating history for a handle
// and runs the aggregation engine over them. The three upstream calls are
// sequential; the client's shared limiter spaces them out.
// Preconditions: Receives a context and a non empty handle
// Postconditions: Returns the full UserStats bundle, external.ErrUserNotFound for an unknown
// handle, or an error if an upstream call fails
func (a *API) GetUserStats(ctx context.Context, handle string) (*shared.UserStats, error) {
	user, err := a.CF.FetchUser(ctx, handle)
	if err != nil {
		return nil, err
	}

	submissions, err := a.CF.FetchSubmissions(ctx, handle)
	if err != nil {
		return nil, err
	}

	ratingHistory, err := a.CF.FetchRatingHistory(ctx, handle)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &shared.UserStats{
		User:          *user,
		Stats:         logic.CalculateStats(submissions, ratingHistory, now),
		Activity:      logic.ActivitySeries(submissions, now),
		RatingHistory: ratingHistory,
	}, nil
}

// CompareProfiles fetches and aggregates two handles and merges the results
// for side by side charting. Both users are verified to exist before any of
// the heavier submission fetches start, so a typo fails fast.
// Preconditions: Receives a context and two distinct non empty handles
// Postconditions: Returns the merged Comparison, or an error if validation or any fetch fails
func (a *API) CompareProfiles(ctx context.Context, handle1 string, handle2 string) (*shared.Comparison, error) {
	if handle1 == "" || handle2 == "" {
		return nil, fmt.Errorf("both handles are required")
	}
	if handle1 == handle2 {
		return nil, fmt.Errorf("cannot compare a handle with itself")
	}

	users, err := a.CF.FetchUsers(ctx, []string{handle1, handle2})
	if err != nil {
		return nil, err
	}

	comparison := &shared.Comparison{
		Handles: [2]string{users[0].Handle, users[1].Handle},
		Users:   [2]shared.User{users[0], users[1]},
	}

	now := time.Now()
	var histories [2][]shared.RatingChange
	for i, user := range users {
		submissions, err := a.CF.FetchSubmissions(ctx, user.Handle)
		if err != nil {
			return nil, err
		}
		history, err := a.CF.FetchRatingHistory(ctx, user.Handle)
		if err != nil {
			return nil, err
		}
		histories[i] = history
		comparison.Stats[i] = logic.CalculateStats(submissions, history, now)
	}

	comparison.RatingSeries = logic.MergeRatingSeries(histories[0], histories[1])
	comparison.RatingRows = logic.MergeRatingHistograms(
		comparison.Stats[0].ProblemsByRating, comparison.Stats[1].ProblemsByRating)
	comparison.TagRows = logic.MergeTagHistograms(
		comparison.Stats[0].ProblemsByTags, comparison.Stats[1].ProblemsByTags)
	comparison.RatingGap, comparison.ExtremeMismatch = logic.RatingGap(users[0], users[1])

	return comparison, nil
}

// LogVisit records a visit for usage analytics. This is fire and forget:
// failures are logged and swallowed, never surfaced to the caller.
// Preconditions: Receives the action, the handles involved, the request path, and the
// visitor's ip address and user agent
// Postconditions: The visit is stored if the database is reachable
func (a *API) LogVisit(action string, handles []string, path string, ipAddress string, userAgent string) {
	visit := store.Visit{
		IPAddress: ipAddress,
		Action:    action,
		Handles:   handles,
		UserAgent: userAgent,
		Path:      path,
		Timestamp: time.Now(),
	}
	if err := a.Store.LogVisit(visit); err != nil {
		log.Println("failed to log visit:", err)
	}
}

// VisitorStats returns the usage analytics summary
func (a *API) VisitorStats() (store.VisitorStats, error) {
	return a.Store.GetVisitorStats()
}

// IsNotFound reports whether an error from this package means the requested
// handle has no matching account
func IsNotFound(err error) bool {
	return errors.Is(err, external.ErrUserNotFound)
}
