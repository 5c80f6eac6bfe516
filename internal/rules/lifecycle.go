package rules

import (
	"strings"

	"stagelink/internal/models"
)

// Offer statuses. Transitions are one-way: open -> closed | cancelled.
// The client never enforces the transition itself, it only reads status.
const (
	StatusOpen      = "open"
	StatusClosed    = "closed"
	StatusCancelled = "cancelled"
)

func IsOpen(o models.Offer) bool {
	return strings.ToLower(o.Status) == StatusOpen
}

func IsFinalized(o models.Offer) bool {
	return !IsOpen(o)
}

// SplitByLifecycle buckets offers into Active and Finalized sections,
// preserving input order.
func SplitByLifecycle(offers []models.Offer) (active, finalized []models.Offer) {
	for _, o := range offers {
		if IsOpen(o) {
			active = append(active, o)
		} else {
			finalized = append(finalized, o)
		}
	}
	return active, finalized
}

// ValidConclusion reports whether status is an allowed terminal state
// for the conclude call.
func ValidConclusion(status string) bool {
	s := strings.ToLower(status)
	return s == StatusClosed || s == StatusCancelled
}
