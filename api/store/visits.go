/* visits.go
 * Contains the methods for interacting with the visits collection: inserting log entries and
 * computing the visitor statistics summary
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// topHandleLimit caps the most-searched / most-compared rankings
const topHandleLimit = 5

// LogVisit inserts one visit record. A zero timestamp is filled with the
// current time.
// Preconditions: Receives a Visit with at least the action set
// Postconditions: The visit is stored, or an error is returned for the caller to observe and discard
func (s *Store) LogVisit(visit Visit) error {
	if visit.Action == "" {
		return fmt.Errorf("visit action cannot be empty")
	}
	if visit.Timestamp.IsZero() {
		visit.Timestamp = time.Now()
	}

	_, err := s.Collections.Visits.InsertOne(context.TODO(), visit)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

// GetVisitorStats computes the usage analytics summary: total and windowed
// visit counts, distinct visitor count and the top searched/compared handles
// Preconditions: Store has been initialised with a reachable database
// Postconditions: Returns the populated VisitorStats, or an error if any query fails
func (s *Store) GetVisitorStats() (VisitorStats, error) {
	ctx := context.TODO()
	now := time.Now()

	var stats VisitorStats
	var err error

	stats.TotalVisits, err = s.Collections.Visits.CountDocuments(ctx, bson.M{})
	if err != nil {
		return VisitorStats{}, fmt.Errorf("failed to count visits: %w", err)
	}

	windows := []struct {
		since time.Time
		out   *int64
	}{
		{now.Add(-24 * time.Hour), &stats.DailyVisits},
		{now.Add(-7 * 24 * time.Hour), &stats.WeeklyVisits},
		{now.Add(-30 * 24 * time.Hour), &stats.MonthlyVisits},
	}
	for _, window := range windows {
		count, err := s.Collections.Visits.CountDocuments(ctx, bson.M{
			"timestamp": bson.M{"$gte": window.since},
		})
		if err != nil {
			return VisitorStats{}, fmt.Errorf("failed to count windowed visits: %w", err)
		}
		*window.out = count
	}

	visitors, err := s.Collections.Visits.Distinct(ctx, "ipaddress", bson.M{})
	if err != nil {
		return VisitorStats{}, fmt.Errorf("failed to count distinct visitors: %w", err)
	}
	stats.UniqueVisitors = int64(len(visitors))

	stats.TopSearchedHandles, err = s.topHandles(ctx, ActionSearch)
	if err != nil {
		return VisitorStats{}, err
	}
	stats.TopComparedHandles, err = s.topHandles(ctx, ActionCompare)
	if err != nil {
		return VisitorStats{}, err
	}

	return stats, nil
}

// topHandles ranks the handles appearing in visits of one action type
func (s *Store) topHandles(ctx context.Context, action string) ([]HandleCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"action": action}}},
		{{Key: "$unwind", Value: "$handles"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$handles",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: topHandleLimit}},
	}

	cursor, err := s.Collections.Visits.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to rank %s handles: %w", action, err)
	}

	var results []HandleCount
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of handle counts: %w", err)
	}
	return results, nil
}
