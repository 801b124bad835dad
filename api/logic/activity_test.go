/* activity_test.go
 * Contains unit tests for the 45 day activity series
 */

package logic

import (
	"testing"
	"time"

	"cf-faceoff/api/shared"

	"github.com/stretchr/testify/assert"
)

// TestActivitySeries_EmptyInput tests that an empty submission list still
// yields a dense 45 point series
func TestActivitySeries_EmptyInput(t *testing.T) {
	points := ActivitySeries(nil, fixedNow)

	assert.Len(t, points, 45)
	for _, point := range points {
		assert.Zero(t, point.Submissions)
		assert.Zero(t, point.ProblemsSolved)
	}
}

// TestActivitySeries_LabelsIncreaseAndEndToday tests the date label invariants
func TestActivitySeries_LabelsIncreaseAndEndToday(t *testing.T) {
	points := ActivitySeries(nil, fixedNow)

	assert.Equal(t, fixedNow.Format("2006-01-02"), points[len(points)-1].Date)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].Date, points[i-1].Date)
	}
}

// TestActivitySeries_BucketsByCalendarDay tests that submissions land in the
// right day and that accepted solves deduplicate within the day
func TestActivitySeries_BucketsByCalendarDay(t *testing.T) {
	twoDaysAgo := fixedNow.Add(-2 * 24 * time.Hour)
	submissions := []shared.Submission{
		acceptedSubmission(1, "A", 800, nil, twoDaysAgo),
		acceptedSubmission(1, "A", 800, nil, twoDaysAgo.Add(time.Hour)), // same problem, same day
		{Verdict: "WRONG_ANSWER", CreationTimeSeconds: twoDaysAgo.Unix(), Problem: shared.Problem{ContestId: 1, Index: "B"}},
	}

	points := ActivitySeries(submissions, fixedNow)

	assert.Len(t, points, 45)
	target := twoDaysAgo.Format("2006-01-02")
	var found bool
	for _, point := range points {
		if point.Date == target {
			found = true
			assert.Equal(t, 3, point.Submissions)
			assert.Equal(t, 1, point.ProblemsSolved)
		} else {
			assert.Zero(t, point.Submissions)
		}
	}
	assert.True(t, found, "expected a point for %s", target)
}

// TestActivitySeries_IgnoresOutOfWindowSubmissions tests that activity older
// than 45 days does not leak into the series
func TestActivitySeries_IgnoresOutOfWindowSubmissions(t *testing.T) {
	old := fixedNow.Add(-60 * 24 * time.Hour)
	submissions := []shared.Submission{
		acceptedSubmission(1, "A", 800, nil, old),
	}

	points := ActivitySeries(submissions, fixedNow)

	for _, point := range points {
		assert.Zero(t, point.Submissions)
		assert.Zero(t, point.ProblemsSolved)
	}
}
