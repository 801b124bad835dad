/* models.go
 * This file contains the structs that relate to DB objects for the visit log
 */

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit actions. A SEARCH is a single profile lookup, a COMPARE is a two
// profile comparison.
const (
	ActionSearch  = "SEARCH"
	ActionCompare = "COMPARE"
)

// Visit is one logged page visit
type Visit struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	IPAddress string             `bson:"ipaddress,omitempty" json:"ipAddress"`
	Action    string             `bson:"action,omitempty" json:"action"`
	Handles   []string           `bson:"handles,omitempty" json:"handles"`
	UserAgent string             `bson:"useragent,omitempty" json:"userAgent"`
	Path      string             `bson:"path,omitempty" json:"path"`
	Timestamp time.Time          `bson:"timestamp,omitempty" json:"timestamp"`
}

// HandleCount is one row of a most-searched or most-compared handle ranking
type HandleCount struct {
	Handle string `bson:"_id" json:"handle"`
	Count  int64  `bson:"count" json:"count"`
}

// VisitorStats is the usage analytics summary served to the frontend
type VisitorStats struct {
	TotalVisits        int64         `json:"totalVisits"`
	DailyVisits        int64         `json:"dailyVisits"`
	WeeklyVisits       int64         `json:"weeklyVisits"`
	MonthlyVisits      int64         `json:"monthlyVisits"`
	UniqueVisitors     int64         `json:"uniqueVisitors"`
	TopSearchedHandles []HandleCount `json:"topSearchedHandles"`
	TopComparedHandles []HandleCount `json:"topComparedHandles"`
}
