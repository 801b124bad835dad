/* aggregate.go
 * Contains the aggregation engine that reduces a user's raw submission and rating change lists
 * into histograms and summary scalars. The whole computation is synchronous and in memory
 */

package logic

import (
	"math"
	"time"

	"cf-faceoff/api/shared"
)

// recentWindowDays is the trailing window used for the solve velocity scalar
const recentWindowDays = 45

// CalculateStats reduces submissions and rating history into AggregatedStats.
// Accepted submissions are deduplicated by ProblemKey in first seen order; a
// problem's rating and tags are counted once no matter how many accepted
// submissions it has. The caller supplies "now" so the 45 day velocity is
// reproducible under test.
// Preconditions: Receives the full submission list, the rating change list and the evaluation time
// Postconditions: Returns AggregatedStats with every divide-by-zero case guarded; never panics
func CalculateStats(submissions []shared.Submission, ratingHistory []shared.RatingChange, now time.Time) shared.AggregatedStats {
	verdicts := make(map[string]int)
	byRating := make(map[int]int)
	byTag := make(map[string]int)
	seen := make(map[string]bool)
	recent := make(map[string]bool)

	windowStart := now.Add(-recentWindowDays * 24 * time.Hour)

	for _, sub := range submissions {
		verdicts[sub.Verdict]++
		if sub.Verdict != shared.VerdictAccepted {
			continue
		}

		key := ProblemKey(sub.Problem)
		if !seen[key] {
			seen[key] = true
			if sub.Problem.Rating != 0 {
				byRating[sub.Problem.Rating]++
			}
			// the upstream occasionally repeats a tag on one problem; count
			// each tag once per problem
			counted := make(map[string]bool, len(sub.Problem.Tags))
			for _, tag := range sub.Problem.Tags {
				if counted[tag] {
					continue
				}
				counted[tag] = true
				byTag[tag]++
			}
		}

		if !time.Unix(sub.CreationTimeSeconds, 0).Before(windowStart) {
			recent[key] = true
		}
	}

	stats := shared.AggregatedStats{
		TotalProblems:    len(seen),
		TotalSubmissions: len(submissions),
		TotalContests:    len(ratingHistory),
		ProblemsByRating: byRating,
		ProblemsByTags:   byTag,
		VerdictCounts:    verdicts,
	}

	if len(byRating) > 0 {
		stats.HasRatedSolves = true
		ratingSum, ratedCount := 0, 0
		for rating, count := range byRating {
			if rating > stats.MaxRating {
				stats.MaxRating = rating
			}
			ratingSum += rating * count
			ratedCount += count
		}
		stats.AverageRating = int(math.Round(float64(ratingSum) / float64(ratedCount)))
	}

	if len(submissions) > 0 {
		stats.AcceptanceRate = int(math.Round(100 * float64(len(seen)) / float64(len(submissions))))
	}

	stats.RecentAverage = math.Round(float64(len(recent))/recentWindowDays*100) / 100

	return stats
}
