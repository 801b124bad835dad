/* activity.go
 * Contains the logic for building the dense 45 day activity series used by the performance chart
 */

package logic

import (
	"time"

	"cf-faceoff/api/shared"
)

// activityDays is the fixed length of the daily activity series
const activityDays = 45

// activityDateLayout labels each point with an ISO calendar date
const activityDateLayout = "2006-01-02"

// ActivitySeries buckets submissions into local calendar days and returns a
// dense series of exactly 45 points, oldest first, ending on the day that
// contains "now". Days with no activity are present with zero counts. The
// solved count per day is unique by ProblemKey, so resubmitting an already
// accepted problem on the same day does not inflate it.
// Preconditions: Receives the full submission list and the evaluation time
// Postconditions: Returns exactly activityDays points with strictly increasing date labels
func ActivitySeries(submissions []shared.Submission, now time.Time) []shared.ActivityPoint {
	loc := now.Location()

	subsPerDay := make(map[string]int)
	solvedPerDay := make(map[string]map[string]bool)

	for _, sub := range submissions {
		label := time.Unix(sub.CreationTimeSeconds, 0).In(loc).Format(activityDateLayout)
		subsPerDay[label]++
		if sub.Verdict != shared.VerdictAccepted {
			continue
		}
		if solvedPerDay[label] == nil {
			solvedPerDay[label] = make(map[string]bool)
		}
		solvedPerDay[label][ProblemKey(sub.Problem)] = true
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, loc)

	points := make([]shared.ActivityPoint, activityDays)
	for i := range points {
		date := today.AddDate(0, 0, i-(activityDays-1))
		label := date.Format(activityDateLayout)
		points[i] = shared.ActivityPoint{
			Date:           label,
			Submissions:    subsPerDay[label],
			ProblemsSolved: len(solvedPerDay[label]),
		}
	}
	return points
}
