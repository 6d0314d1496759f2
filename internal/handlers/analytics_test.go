package handlers

import (
	"testing"
	"time"

	"rahhalah-backend/internal/models"
)

func TestDashboardRangeStart(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	if got := dashboardRangeStart(today, "today"); !got.Equal(today) {
		t.Fatalf("expected today range to start at %v, got %v", today, got)
	}
	if got := dashboardRangeStart(today, ""); !got.Equal(today) {
		t.Fatalf("expected default range to start at %v, got %v", today, got)
	}
	if got := dashboardRangeStart(today, "week"); !got.Equal(today.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected week start %v", got)
	}
	if got := dashboardRangeStart(today, "month"); !got.Equal(today.AddDate(0, -1, 0)) {
		t.Fatalf("unexpected month start %v", got)
	}
}

func TestDayKeyTruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("EET", 2*3600)
	moment := time.Date(2024, 3, 15, 1, 30, 0, 0, loc) // 23:30 UTC on the 14th

	key := models.DayKey(moment)
	want := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	if !key.Equal(want) {
		t.Fatalf("expected day key %v, got %v", want, key)
	}
}

func TestDayKeyIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	if !models.DayKey(morning).Equal(models.DayKey(evening)) {
		t.Fatal("expected the same bucket key for the whole day")
	}
}
