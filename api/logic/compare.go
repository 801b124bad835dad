/* compare.go
 * Contains the merge logic for two profile comparison: aligning rating histories on a shared
 * time axis and joining per user histograms into zero filled tables
 */

package logic

import (
	"sort"
	"strconv"
	"time"

	"cf-faceoff/api/shared"
)

// mismatchThreshold is the current-rating gap beyond which the comparison is
// flagged as an extreme mismatch. The comparison itself still computes; the
// consuming layer decides how loudly to warn.
const mismatchThreshold = 1200

// MergeRatingSeries builds a time aligned series from two users' rating
// histories. The series covers the union of both users' rating update
// timestamps sorted ascending; a user's rating is nil at timestamps where only
// the other competed. The contest name comes from whichever side has a record.
// Preconditions: Receives the two rating change lists, either may be empty
// Postconditions: Returns one point per distinct timestamp, sorted ascending
func MergeRatingSeries(first, second []shared.RatingChange) []shared.RatingPoint {
	byTime := [2]map[int64]shared.RatingChange{
		indexByTime(first),
		indexByTime(second),
	}

	timesSeen := make(map[int64]bool)
	var times []int64
	for _, index := range byTime {
		for t := range index {
			if !timesSeen[t] {
				timesSeen[t] = true
				times = append(times, t)
			}
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	points := make([]shared.RatingPoint, 0, len(times))
	for _, t := range times {
		point := shared.RatingPoint{
			TimeSeconds: t,
			Date:        time.Unix(t, 0).Format(activityDateLayout),
		}
		for i := range byTime {
			if change, ok := byTime[i][t]; ok {
				rating := change.NewRating
				point.Ratings[i] = &rating
				if point.ContestName == "" {
					point.ContestName = change.ContestName
				}
			}
		}
		points = append(points, point)
	}
	return points
}

// MergeRatingHistograms joins two problems-by-rating histograms into rows
// keyed by exact rating, sorted ascending, zero filling the user that has no
// solves at a rating.
func MergeRatingHistograms(first, second map[int]int) []shared.HistogramRow {
	keysSeen := make(map[int]bool)
	var keys []int
	for _, histogram := range []map[int]int{first, second} {
		for rating := range histogram {
			if !keysSeen[rating] {
				keysSeen[rating] = true
				keys = append(keys, rating)
			}
		}
	}
	sort.Ints(keys)

	rows := make([]shared.HistogramRow, 0, len(keys))
	for _, rating := range keys {
		rows = append(rows, shared.HistogramRow{
			Key:    strconv.Itoa(rating),
			Counts: [2]int{first[rating], second[rating]},
		})
	}
	return rows
}

// MergeTagHistograms joins two problems-by-tag histograms into rows sorted by
// tag name, zero filling absent tags
func MergeTagHistograms(first, second map[string]int) []shared.HistogramRow {
	keysSeen := make(map[string]bool)
	var keys []string
	for _, histogram := range []map[string]int{first, second} {
		for tag := range histogram {
			if !keysSeen[tag] {
				keysSeen[tag] = true
				keys = append(keys, tag)
			}
		}
	}
	sort.Strings(keys)

	rows := make([]shared.HistogramRow, 0, len(keys))
	for _, tag := range keys {
		rows = append(rows, shared.HistogramRow{
			Key:    tag,
			Counts: [2]int{first[tag], second[tag]},
		})
	}
	return rows
}

// RatingGap returns the absolute difference between two users' current
// ratings and whether it crosses the extreme mismatch threshold
func RatingGap(first, second shared.User) (int, bool) {
	gap := first.Rating - second.Rating
	if gap < 0 {
		gap = -gap
	}
	return gap, gap > mismatchThreshold
}

func indexByTime(changes []shared.RatingChange) map[int64]shared.RatingChange {
	index := make(map[int64]shared.RatingChange, len(changes))
	for _, change := range changes {
		index[change.RatingUpdateTimeSeconds] = change
	}
	return index
}
