package handlers

import (
	"testing"

	"rahhalah-backend/internal/models"
)

func TestCanTransitionStrictForwardChain(t *testing.T) {
	chain := []string{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusShipped,
		models.StatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		if !canTransition(chain[i], chain[i+1], true) {
			t.Fatalf("expected %s -> %s to be legal", chain[i], chain[i+1])
		}
	}
}

func TestCanTransitionStrictRejectsSkipsAndBackwards(t *testing.T) {
	illegal := [][2]string{
		{models.StatusPending, models.StatusShipped},
		{models.StatusPending, models.StatusDelivered},
		{models.StatusConfirmed, models.StatusPending},
		{models.StatusDelivered, models.StatusPending},
		{models.StatusShipped, models.StatusConfirmed},
	}
	for _, pair := range illegal {
		if canTransition(pair[0], pair[1], true) {
			t.Fatalf("expected %s -> %s to be illegal", pair[0], pair[1])
		}
	}
}

func TestCancelledReachableFromNonTerminalStates(t *testing.T) {
	for _, from := range []string{models.StatusPending, models.StatusConfirmed, models.StatusShipped} {
		if !canTransition(from, models.StatusCancelled, true) {
			t.Fatalf("expected %s -> cancelled to be legal", from)
		}
	}
	for _, from := range []string{models.StatusDelivered, models.StatusCancelled} {
		if canTransition(from, models.StatusCancelled, true) {
			t.Fatalf("expected %s to be terminal", from)
		}
	}
}

func TestCanTransitionPermissiveMode(t *testing.T) {
	if !canTransition(models.StatusDelivered, models.StatusPending, false) {
		t.Fatal("expected any known status to be writable in permissive mode")
	}
	if canTransition(models.StatusPending, "unknown", false) {
		t.Fatal("expected unknown statuses to be rejected even in permissive mode")
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		if !validOrderStatus(status) {
			t.Fatalf("expected %q to be a valid status", status)
		}
	}
	if validOrderStatus("returned") {
		t.Fatal("expected unknown status to be invalid")
	}
}
