package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyStats is the per-calendar-day analytics bucket, keyed by UTC midnight.
// Buckets are created lazily by an idempotent upsert on the first event of a day.
type DailyStats struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Visits      int                `bson:"visits" json:"visits"`
	OrdersCount int                `bson:"ordersCount" json:"ordersCount"`
	Revenue     float64            `bson:"revenue" json:"revenue"`
}

// DayKey truncates t to UTC midnight, the bucket key for that day.
func DayKey(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
