package rules

import "stagelink/internal/models"

// Counterpart resolves the "other party" of an offer for chat headers
// and labels. No single field is reliably populated at every lifecycle
// stage (the thread may be empty, the match may be unaccepted), so the
// resolution degrades through increasingly weak signals:
//
//  1. any author in the loaded thread that is not the viewer;
//  2. the role-implied principal (venue -> accepted performer,
//     performer -> distributor);
//  3. structural fields in order distributorId, acceptedPerformerId,
//     skipping the viewer's own id.
//
// Returns 0 when nothing resolves.
func Counterpart(offer models.Offer, thread []models.Message, meID int, role Role) int {
	for _, m := range thread {
		if m.AuthorID != 0 && m.AuthorID != meID {
			return m.AuthorID
		}
	}

	switch role {
	case RoleVenue, RoleAdmin:
		if offer.AcceptedPerformerID != 0 && offer.AcceptedPerformerID != meID {
			return offer.AcceptedPerformerID
		}
	case RolePerformer:
		if offer.DistributorID != 0 && offer.DistributorID != meID {
			return offer.DistributorID
		}
	}

	for _, id := range []int{offer.DistributorID, offer.AcceptedPerformerID} {
		if id != 0 && id != meID {
			return id
		}
	}
	return 0
}
