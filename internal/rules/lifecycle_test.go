package rules

import (
	"testing"

	"stagelink/internal/models"
)

func TestIsOpenIsFinalizedComplement(t *testing.T) {
	statuses := []string{"open", "OPEN", "Open", "closed", "CLOSED", "cancelled", "Cancelled", "", "weird"}
	for _, s := range statuses {
		o := models.Offer{Status: s}
		if IsOpen(o) == IsFinalized(o) {
			t.Fatalf("status %q: IsOpen and IsFinalized must be complements", s)
		}
	}
	if !IsOpen(models.Offer{Status: "OPEN"}) {
		t.Fatal("status matching must be case-insensitive")
	}
	if IsOpen(models.Offer{Status: "closed"}) {
		t.Fatal("closed offer reported open")
	}
}

func TestSplitByLifecycle(t *testing.T) {
	offers := []models.Offer{
		{ID: 1, Status: "open"},
		{ID: 2, Status: "closed"},
		{ID: 3, Status: "OPEN"},
		{ID: 4, Status: "cancelled"},
	}
	active, finalized := SplitByLifecycle(offers)
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Fatalf("unexpected active bucket: %+v", active)
	}
	if len(finalized) != 2 || finalized[0].ID != 2 || finalized[1].ID != 4 {
		t.Fatalf("unexpected finalized bucket: %+v", finalized)
	}
}

func TestValidConclusion(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"closed", true},
		{"cancelled", true},
		{"CLOSED", true},
		{"open", false},
		{"concluded", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidConclusion(tc.status); got != tc.want {
			t.Fatalf("ValidConclusion(%q): expected %v got %v", tc.status, tc.want, got)
		}
	}
}
