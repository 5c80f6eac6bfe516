package rules

import (
	"testing"

	"stagelink/internal/models"
)

func TestFilterFeed(t *testing.T) {
	offers := []models.Offer{
		{ID: 1, Status: "open"},
		{ID: 2, Status: "closed"},
		{ID: 3, Status: "OPEN"},
	}

	performer := FilterFeed(offers, RolePerformer)
	if len(performer) != 2 || performer[0].ID != 1 || performer[1].ID != 3 {
		t.Fatalf("performer feed should contain only open offers, got %+v", performer)
	}

	if venue := FilterFeed(offers, RoleVenue); venue != nil {
		t.Fatalf("venue must not see the offers feed, got %+v", venue)
	}

	if admin := FilterFeed(offers, RoleAdmin); len(admin) != 3 {
		t.Fatalf("admin feed must be unfiltered, got %+v", admin)
	}
	if guest := FilterFeed(offers, RoleGuest); len(guest) != 3 {
		t.Fatalf("guest feed must be unfiltered, got %+v", guest)
	}
}

func TestFilterCity(t *testing.T) {
	offers := []models.Offer{
		{ID: 1, City: "Madrid"},
		{ID: 2, City: "Berlin"},
		{ID: 3, City: "madrid "},
	}

	got := FilterCity(offers, "madrid")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("city filter must be case-insensitive and trimmed, got %+v", got)
	}

	if all := FilterCity(offers, ""); len(all) != 3 {
		t.Fatalf("empty city must not filter, got %+v", all)
	}
	if none := FilterCity(offers, "Paris"); len(none) != 0 {
		t.Fatalf("expected no offers for Paris, got %+v", none)
	}
}

func TestHead(t *testing.T) {
	offers := []models.Offer{{ID: 1}, {ID: 2}, {ID: 3}}
	if got := Head(offers, 2); len(got) != 2 {
		t.Fatalf("expected 2 offers got %d", len(got))
	}
	if got := Head(offers, 10); len(got) != 3 {
		t.Fatalf("expected 3 offers got %d", len(got))
	}
}
