package handlers

import "rahhalah-backend/internal/models"

// legalTransitions is the intended status graph: the fulfilment chain moves
// forward one step at a time, and cancellation is reachable from any
// non-terminal state. Delivered and cancelled are terminal.
var legalTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusShipped, models.StatusCancelled},
	models.StatusShipped:   {models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered: {},
	models.StatusCancelled: {},
}

func validOrderStatus(status string) bool {
	_, ok := legalTransitions[status]
	return ok
}

// canTransition reports whether moving from one status to the next is legal.
// With strict disabled any known status may be written at any time, matching
// the historical permissive behavior.
func canTransition(from, to string, strict bool) bool {
	if !validOrderStatus(to) {
		return false
	}
	if !strict {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
