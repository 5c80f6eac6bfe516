package rules

import (
	"strings"

	"stagelink/internal/models"
)

// CanReview reports whether the viewer may leave a review for the
// offer: only after closure, and only between the two principals. The
// result must be re-derived every time the offer is refetched, since
// eligibility appears only once status flips to closed.
func CanReview(offer models.Offer, meID int, role Role) bool {
	if meID == 0 {
		return false
	}
	if !strings.EqualFold(offer.Status, StatusClosed) {
		return false
	}
	switch role {
	case RoleVenue:
		return offer.DistributorID == meID && offer.AcceptedPerformerID != 0
	case RolePerformer:
		return offer.AcceptedPerformerID == meID && offer.DistributorID != 0
	default:
		return false
	}
}

// ReviewTarget is the other principal, or 0 when the viewer is not
// eligible.
func ReviewTarget(offer models.Offer, meID int, role Role) int {
	if !CanReview(offer, meID, role) {
		return 0
	}
	if role == RoleVenue {
		return offer.AcceptedPerformerID
	}
	return offer.DistributorID
}

// ValidScore bounds a star rating to the 1..5 integers.
func ValidScore(score int) bool {
	return score >= 1 && score <= 5
}
