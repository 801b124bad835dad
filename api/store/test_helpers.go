/* test_helpers.go
 * Contains test helper functions and sample data for store package tests
 */

package store

import (
	"context"
	"time"
)

// CreateTestStore creates a Store connected to a throwaway test database.
// Returns the store and a cleanup function that drops the database.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	s, err := NewStore("test_cf_faceoff", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s.Client != nil {
			s.Database.Drop(context.TODO())
			s.Client.Disconnect(context.TODO())
		}
	}

	return s, cleanup, nil
}

// CreateSampleVisits creates sample visit log data for testing
func CreateSampleVisits(now time.Time) []Visit {
	return []Visit{
		{
			IPAddress: "203.0.113.10",
			Action:    ActionSearch,
			Handles:   []string{"tourist"},
			UserAgent: "test-agent",
			Path:      "/dashboard",
			Timestamp: now.Add(-time.Hour),
		},
		{
			IPAddress: "203.0.113.10",
			Action:    ActionSearch,
			Handles:   []string{"tourist"},
			UserAgent: "test-agent",
			Path:      "/dashboard",
			Timestamp: now.Add(-2 * 24 * time.Hour),
		},
		{
			IPAddress: "203.0.113.20",
			Action:    ActionCompare,
			Handles:   []string{"tourist", "Petr"},
			UserAgent: "test-agent",
			Path:      "/compare",
			Timestamp: now.Add(-10 * 24 * time.Hour),
		},
		{
			IPAddress: "203.0.113.30",
			Action:    ActionSearch,
			Handles:   []string{"Petr"},
			UserAgent: "test-agent",
			Path:      "/dashboard",
			Timestamp: now.Add(-40 * 24 * time.Hour),
		},
	}
}
