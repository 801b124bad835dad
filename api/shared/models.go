/* models.go
 * This file contains the Codeforces wire models and the derived statistics shapes that are shared
 * between sub packages
 */

package shared

// VerdictAccepted is the verdict the Codeforces judge assigns to a passing
// submission. Only OK matters for solve counting; everything else appears in
// the verdict distribution as-is.
const VerdictAccepted = "OK"

// User is a profile snapshot as returned by the user.info endpoint
type User struct {
	Handle                  string `json:"handle"`
	Rating                  int    `json:"rating"`
	MaxRating               int    `json:"maxRating"`
	Rank                    string `json:"rank"`
	MaxRank                 string `json:"maxRank"`
	Contribution            int    `json:"contribution"`
	FriendOfCount           int    `json:"friendOfCount"`
	LastOnlineTimeSeconds   int64  `json:"lastOnlineTimeSeconds"`
	RegistrationTimeSeconds int64  `json:"registrationTimeSeconds"`
	TitlePhoto              string `json:"titlePhoto"`
	Avatar                  string `json:"avatar"`
	Country                 string `json:"country,omitempty"`
	Organization            string `json:"organization,omitempty"`
}

// Problem identifies one task. The (ContestId, Index) pair is the preferred
// identity but either or both can be missing (gym uploads, acmsguru problems).
// A Rating of 0 means the problem is unrated.
type Problem struct {
	ContestId int      `json:"contestId,omitempty"`
	Index     string   `json:"index,omitempty"`
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	Points    float64  `json:"points,omitempty"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
}

// Submission is one judged attempt from the user.status endpoint
type Submission struct {
	Id                  int64   `json:"id"`
	ContestId           int     `json:"contestId,omitempty"`
	CreationTimeSeconds int64   `json:"creationTimeSeconds"`
	RelativeTimeSeconds int64   `json:"relativeTimeSeconds,omitempty"`
	Problem             Problem `json:"problem"`
	ProgrammingLanguage string  `json:"programmingLanguage,omitempty"`
	Verdict             string  `json:"verdict"`
	Testset             string  `json:"testset,omitempty"`
	PassedTestCount     int     `json:"passedTestCount"`
	TimeConsumedMillis  int64   `json:"timeConsumedMillis,omitempty"`
	MemoryConsumedBytes int64   `json:"memoryConsumedBytes,omitempty"`
}

// RatingChange is one contest's effect on a user's rating, from user.rating.
// The upstream returns these ordered by time, last element most recent.
type RatingChange struct {
	ContestId               int    `json:"contestId"`
	ContestName             string `json:"contestName"`
	Handle                  string `json:"handle"`
	Rank                    int    `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
}

// AggregatedStats is the output of the aggregation engine for one user.
// MaxRating and AverageRating are only meaningful when HasRatedSolves is true;
// consumers must render "no data" otherwise.
type AggregatedStats struct {
	TotalProblems    int            `json:"totalProblems"`
	MaxRating        int            `json:"maxRating"`
	AverageRating    int            `json:"averageRating"`
	HasRatedSolves   bool           `json:"hasRatedSolves"`
	AcceptanceRate   int            `json:"acceptanceRate"`
	RecentAverage    float64        `json:"recentAverage"`
	TotalSubmissions int            `json:"totalSubmissions"`
	TotalContests    int            `json:"totalContests"`
	ProblemsByRating map[int]int    `json:"problemsByRating"`
	ProblemsByTags   map[string]int `json:"problemsByTags"`
	VerdictCounts    map[string]int `json:"verdictCounts"`
}

// ActivityPoint is one day of the dense 45 day activity series
type ActivityPoint struct {
	Date           string `json:"date"`
	Submissions    int    `json:"submissions"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// UserStats bundles everything the presentation layer needs for one profile
type UserStats struct {
	User          User            `json:"user"`
	Stats         AggregatedStats `json:"stats"`
	Activity      []ActivityPoint `json:"activity"`
	RatingHistory []RatingChange  `json:"ratingHistory"`
}

// RatingPoint is one entry of the merged two-user rating series. Ratings[i]
// is nil when user i did not compete at this timestamp.
type RatingPoint struct {
	TimeSeconds int64   `json:"timeSeconds"`
	Date        string  `json:"date"`
	ContestName string  `json:"contestName"`
	Ratings     [2]*int `json:"ratings"`
}

// HistogramRow is one key of a merged two-user histogram, zero filled for the
// user that has no solves at this key
type HistogramRow struct {
	Key    string `json:"key"`
	Counts [2]int `json:"counts"`
}

// Comparison is the full output of a two profile comparison
type Comparison struct {
	Handles         [2]string          `json:"handles"`
	Users           [2]User            `json:"users"`
	Stats           [2]AggregatedStats `json:"stats"`
	RatingSeries    []RatingPoint      `json:"ratingSeries"`
	RatingRows      []HistogramRow     `json:"ratingRows"`
	TagRows         []HistogramRow     `json:"tagRows"`
	RatingGap       int                `json:"ratingGap"`
	ExtremeMismatch bool               `json:"extremeMismatch"`
}
