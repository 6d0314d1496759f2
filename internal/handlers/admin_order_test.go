package handlers

import (
	"testing"
	"time"
)

func TestParseDateParam(t *testing.T) {
	if _, ok := parseDateParam(""); ok {
		t.Fatal("expected empty param to be absent")
	}
	if _, ok := parseDateParam("not-a-date"); ok {
		t.Fatal("expected garbage to be rejected")
	}

	got, ok := parseDateParam("2024-03-15")
	if !ok {
		t.Fatal("expected plain date to parse")
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
		t.Fatalf("unexpected parsed date %v", got)
	}

	if _, ok := parseDateParam("2024-03-15T10:30:00Z"); !ok {
		t.Fatal("expected RFC3339 date to parse")
	}
}
