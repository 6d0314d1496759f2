package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

// bumpDailyStats is the idempotent upsert behind all analytics counters:
// one bucket per UTC day, created on first touch, incremented afterwards.
func bumpDailyStats(db *mongo.Database, inc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	day := models.DayKey(time.Now())
	_, err := db.Collection("analytics").UpdateOne(
		ctx,
		bson.M{"date": day},
		bson.M{
			"$inc":         inc,
			"$setOnInsert": bson.M{"date": day},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// recordOrderStats counts a committed order. Fire-and-forget: failures are
// logged and swallowed, they must never fail the order response.
func recordOrderStats(db *mongo.Database, total float64) {
	if err := bumpDailyStats(db, bson.M{"ordersCount": 1, "revenue": total}); err != nil {
		log.Println("[ANALYTICS] [ERROR] order stats update failed:", err)
	}
}

/* =========================
   TRACK VISIT
========================= */

func TrackVisit(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /analytics/visit"
		defer handlePanic(c, route)

		if err := bumpDailyStats(db, bson.M{"visits": 1}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

/* =========================
   DASHBOARD
========================= */

// dashboardRangeStart maps a range keyword to the first day included,
// relative to the given day key. Unknown keywords mean "today".
func dashboardRangeStart(today time.Time, rangeKeyword string) time.Time {
	switch rangeKeyword {
	case "week":
		return today.AddDate(0, 0, -7)
	case "month":
		return today.AddDate(0, -1, 0)
	default:
		return today
	}
}

type dashboardDay struct {
	Date    string  `json:"date"`
	Visits  int     `json:"visits"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GetDashboard returns summary totals plus a per-day breakdown for charts.
func GetDashboard(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/dashboard"
		defer handlePanic(c, route)

		startDate := dashboardRangeStart(models.DayKey(time.Now()), c.Query("range"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
		cursor, err := db.Collection("analytics").Find(ctx, bson.M{
			"date": bson.M{"$gte": startDate},
		}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}
		defer cursor.Close(ctx)

		var stats []models.DailyStats
		if err := cursor.All(ctx, &stats); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		totalVisits, totalOrders := 0, 0
		totalRevenue := 0.0
		chartData := make([]dashboardDay, 0, len(stats))
		for _, stat := range stats {
			totalVisits += stat.Visits
			totalOrders += stat.OrdersCount
			totalRevenue += stat.Revenue
			chartData = append(chartData, dashboardDay{
				Date:    stat.Date.Format("2006-01-02"),
				Visits:  stat.Visits,
				Orders:  stat.OrdersCount,
				Revenue: stat.Revenue,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"summary": gin.H{
					"visits":  totalVisits,
					"orders":  totalOrders,
					"revenue": totalRevenue,
				},
				"chartData": chartData,
			},
		})
	}
}
