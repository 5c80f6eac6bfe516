package views

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stagelink/internal/api"
	"stagelink/internal/models"
)

func TestYourOffersSplitsByLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/offers/created"):
			io.WriteString(w, `[
				{"offerId":1,"status":"open"},
				{"offerId":2,"status":"closed"},
				{"offerId":3,"status":"cancelled"}
			]`)
		case strings.HasSuffix(r.URL.Path, "/offers/applied"):
			io.WriteString(w, `[
				{"offerId":4,"status":"open","matchId":9,"matchStatus":"pending"}
			]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	view := &YourOffers{
		API:   api.NewClient(server.Client(), server.URL, api.StaticToken("tok")),
		Store: storeWith(&models.User{ID: 7, Role: "performer"}),
	}
	data, err := view.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if data.CreatedTotal != 3 || data.AppliedTotal != 1 {
		t.Fatalf("unexpected totals: %+v", data)
	}
	if len(data.CreatedActive) != 1 || data.CreatedActive[0].ID != 1 {
		t.Fatalf("expected offer 1 active, got %+v", data.CreatedActive)
	}
	if len(data.CreatedFinalized) != 2 {
		t.Fatalf("closed and cancelled both count as finalized, got %+v", data.CreatedFinalized)
	}
	if len(data.AppliedActive) != 1 || data.AppliedActive[0].MatchStatus != "pending" {
		t.Fatalf("applied row must keep its match status, got %+v", data.AppliedActive)
	}
}

func TestYourOffersRequiresLogin(t *testing.T) {
	view := &YourOffers{API: nil, Store: storeWith(nil)}
	if _, err := view.Load(context.Background()); !errors.Is(err, models.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestYourOffersFailsWhenEitherListFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/offers/created") {
			io.WriteString(w, `[]`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"applied exploded"}`)
	}))
	defer server.Close()

	view := &YourOffers{
		API:   api.NewClient(server.Client(), server.URL, api.StaticToken("tok")),
		Store: storeWith(&models.User{ID: 7, Role: "performer"}),
	}
	if _, err := view.Load(context.Background()); err == nil || !strings.Contains(err.Error(), "applied exploded") {
		t.Fatalf("expected applied-offers failure to surface, got %v", err)
	}
}
