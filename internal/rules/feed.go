package rules

import (
	"strings"

	"stagelink/internal/models"
)

// FilterFeed applies the landing-feed visibility rules: performers see
// open offers only, venues get no feed at all, admins and guests see
// the list unfiltered.
func FilterFeed(offers []models.Offer, role Role) []models.Offer {
	switch role {
	case RoleVenue:
		return nil
	case RolePerformer:
		var open []models.Offer
		for _, o := range offers {
			if IsOpen(o) {
				open = append(open, o)
			}
		}
		return open
	default:
		return offers
	}
}

// FilterCity narrows a list by case-insensitive exact city match. An
// empty city leaves the list untouched.
func FilterCity(offers []models.Offer, city string) []models.Offer {
	want := strings.ToLower(strings.TrimSpace(city))
	if want == "" {
		return offers
	}
	var out []models.Offer
	for _, o := range offers {
		if strings.ToLower(strings.TrimSpace(o.City)) == want {
			out = append(out, o)
		}
	}
	return out
}

// Head caps a list at n entries without copying.
func Head(offers []models.Offer, n int) []models.Offer {
	if n < 0 || len(offers) <= n {
		return offers
	}
	return offers[:n]
}
