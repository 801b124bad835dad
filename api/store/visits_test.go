/* visits_test.go
 * Contains tests for the visit log methods. The database backed tests are gated on
 * MONGO_TEST_URI so the package tests pass without a running MongoDB
 */

package store

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLogVisit_EmptyAction tests validation without touching the database
func TestLogVisit_EmptyAction(t *testing.T) {
	s := &Store{}
	err := s.LogVisit(Visit{})
	assert.Error(t, err)
}

func requireTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	mongoURI := os.Getenv("MONGO_TEST_URI")
	if mongoURI == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}

	s, cleanup, err := CreateTestStore(mongoURI)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s, cleanup
}

// TestLogVisit_Integration tests inserting and counting visits
func TestLogVisit_Integration(t *testing.T) {
	s, cleanup := requireTestStore(t)
	defer cleanup()

	for _, visit := range CreateSampleVisits(time.Now()) {
		assert.NoError(t, s.LogVisit(visit))
	}

	stats, err := s.GetVisitorStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(1), stats.DailyVisits)
	assert.Equal(t, int64(2), stats.WeeklyVisits)
	assert.Equal(t, int64(3), stats.MonthlyVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
}

// TestGetVisitorStats_TopHandles_Integration tests the handle rankings
func TestGetVisitorStats_TopHandles_Integration(t *testing.T) {
	s, cleanup := requireTestStore(t)
	defer cleanup()

	for _, visit := range CreateSampleVisits(time.Now()) {
		assert.NoError(t, s.LogVisit(visit))
	}

	stats, err := s.GetVisitorStats()
	assert.NoError(t, err)

	// tourist was searched twice, Petr once
	assert.NotEmpty(t, stats.TopSearchedHandles)
	assert.Equal(t, "tourist", stats.TopSearchedHandles[0].Handle)
	assert.Equal(t, int64(2), stats.TopSearchedHandles[0].Count)

	// the single compare visit mentions both handles
	assert.Len(t, stats.TopComparedHandles, 2)
}

// TestLogVisit_FillsTimestamp_Integration tests that a zero timestamp is defaulted
func TestLogVisit_FillsTimestamp_Integration(t *testing.T) {
	s, cleanup := requireTestStore(t)
	defer cleanup()

	err := s.LogVisit(Visit{
		IPAddress: "203.0.113.99",
		Action:    ActionSearch,
		Handles:   []string{"tourist"},
	})
	assert.NoError(t, err)

	stats, err := s.GetVisitorStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), stats.DailyVisits)
}
