/* format.go
 * Contains the text formatting helpers that turn aggregation output into Discord replies
 */

package bot

import (
	"fmt"
	"strings"

	"cf-faceoff/api/shared"
	"cf-faceoff/api/store"
)

// formatUserStats renders one profile's aggregated statistics
func formatUserStats(stats *shared.UserStats) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("**%s** (%s)\n", stats.User.Handle, orNone(stats.User.Rank)))
	res.WriteString(fmt.Sprintf("Rating: %d (max %d, %s)\n", stats.User.Rating, stats.User.MaxRating, orNone(stats.User.MaxRank)))
	res.WriteString(fmt.Sprintf("Contests: %d\n", stats.Stats.TotalContests))
	res.WriteString(fmt.Sprintf("Problems solved: %d of %d submissions (%d%% acceptance)\n",
		stats.Stats.TotalProblems, stats.Stats.TotalSubmissions, stats.Stats.AcceptanceRate))
	if stats.Stats.HasRatedSolves {
		res.WriteString(fmt.Sprintf("Difficulty: max %d, average %d\n", stats.Stats.MaxRating, stats.Stats.AverageRating))
	} else {
		res.WriteString("Difficulty: no rated solves\n")
	}
	res.WriteString(fmt.Sprintf("Solve velocity (45 days): %.2f problems/day\n", stats.Stats.RecentAverage))
	return res.String()
}

// formatComparison renders two profiles side by side
func formatComparison(comparison *shared.Comparison) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("**%s** vs **%s**\n", comparison.Handles[0], comparison.Handles[1]))
	if comparison.ExtremeMismatch {
		res.WriteString(fmt.Sprintf("Extreme mismatch: the rating gap is %d points\n", comparison.RatingGap))
	}
	for i := range comparison.Handles {
		user := comparison.Users[i]
		stats := comparison.Stats[i]
		res.WriteString(fmt.Sprintf("%s: rating %d (max %d), %d contests, %d solved, %d%% acceptance, %.2f problems/day\n",
			user.Handle, user.Rating, user.MaxRating,
			stats.TotalContests, stats.TotalProblems, stats.AcceptanceRate, stats.RecentAverage))
	}
	res.WriteString(fmt.Sprintf("Shared rating timeline covers %d contests\n", len(comparison.RatingSeries)))
	return res.String()
}

// formatVisitorStats renders the usage analytics summary
func formatVisitorStats(stats store.VisitorStats) string {
	var res strings.Builder
	res.WriteString("Dashboard usage:\n")
	res.WriteString(fmt.Sprintf("Visits: %d total, %d today, %d this week, %d this month\n",
		stats.TotalVisits, stats.DailyVisits, stats.WeeklyVisits, stats.MonthlyVisits))
	res.WriteString(fmt.Sprintf("Unique visitors: %d\n", stats.UniqueVisitors))
	if len(stats.TopSearchedHandles) > 0 {
		res.WriteString("Most searched:")
		for _, entry := range stats.TopSearchedHandles {
			res.WriteString(fmt.Sprintf(" %s (%d)", entry.Handle, entry.Count))
		}
		res.WriteString("\n")
	}
	if len(stats.TopComparedHandles) > 0 {
		res.WriteString("Most compared:")
		for _, entry := range stats.TopComparedHandles {
			res.WriteString(fmt.Sprintf(" %s (%d)", entry.Handle, entry.Count))
		}
		res.WriteString("\n")
	}
	return res.String()
}

func orNone(value string) string {
	if value == "" {
		return "unrated"
	}
	return value
}
