package views

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/state"
)

func storeWith(user *models.User) *state.Store {
	s := state.NewStore()
	if user != nil {
		s.Dispatch(state.Action{Type: state.ActionSetUser, User: user})
	}
	return s
}

func homeBackend(t *testing.T, offersStatus int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/users/latest"):
			if r.URL.Query().Get("role") == "performer" {
				io.WriteString(w, `[{"userId":2,"name":"Ana","role":"performer"}]`)
			} else {
				io.WriteString(w, `[{"userId":3,"name":"Club","role":"distributor"}]`)
			}
		case r.URL.Path == "/api/offers":
			if offersStatus != http.StatusOK {
				w.WriteHeader(offersStatus)
				io.WriteString(w, `{"message":"offers exploded"}`)
				return
			}
			io.WriteString(w, `[
				{"offerId":1,"city":"Madrid","status":"open"},
				{"offerId":2,"city":"Berlin","status":"closed"},
				{"offerId":3,"city":"Madrid","status":"OPEN"}
			]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHomePerformerSeesOnlyOpenOffers(t *testing.T) {
	server := homeBackend(t, http.StatusOK)
	home := &Home{
		API:   api.NewClient(server.Client(), server.URL, api.StaticToken("tok")),
		Store: storeWith(&models.User{ID: 7, Role: "performer"}),
	}

	data, err := home.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Offers) != 2 {
		t.Fatalf("expected 2 open offers, got %+v", data.Offers)
	}
	for _, o := range data.Offers {
		if o.Status != "open" && o.Status != "OPEN" {
			t.Fatalf("closed offer leaked into performer feed: %+v", o)
		}
	}
	if len(data.Performers) != 1 || len(data.Venues) != 1 {
		t.Fatalf("expected user panels to load, got %+v / %+v", data.Performers, data.Venues)
	}
}

func TestHomeVenueGetsNoFeed(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/offers" {
			requests++
		}
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	home := &Home{
		API:   api.NewClient(server.Client(), server.URL, api.StaticToken("tok")),
		Store: storeWith(&models.User{ID: 3, Role: "distributor"}),
	}
	data, err := home.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Offers != nil || data.OffersErr != "" {
		t.Fatalf("venue must not get an offers feed, got %+v", data)
	}
	if requests != 0 {
		t.Fatalf("venue home must not even fetch offers, saw %d requests", requests)
	}
}

func TestHomeGuestAndAdminGetUnfilteredFeed(t *testing.T) {
	for _, user := range []*models.User{nil, {ID: 1, Role: "admin"}} {
		server := homeBackend(t, http.StatusOK)
		home := &Home{
			API:   api.NewClient(server.Client(), server.URL, api.StaticToken("")),
			Store: storeWith(user),
		}
		data, err := home.Load(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(data.Offers) != 3 {
			t.Fatalf("expected unfiltered feed of 3, got %+v", data.Offers)
		}
	}
}

func TestHomePanelErrorsAreIsolated(t *testing.T) {
	server := homeBackend(t, http.StatusInternalServerError)
	home := &Home{
		API:   api.NewClient(server.Client(), server.URL, api.StaticToken("tok")),
		Store: storeWith(&models.User{ID: 7, Role: "performer"}),
	}

	data, err := home.Load(context.Background())
	if err != nil {
		t.Fatalf("a single failed panel must not fail the page: %v", err)
	}
	if data.OffersErr == "" || !strings.Contains(data.OffersErr, "offers exploded") {
		t.Fatalf("expected inline offers error, got %q", data.OffersErr)
	}
	if len(data.Performers) != 1 || len(data.Venues) != 1 {
		t.Fatal("sibling panels must survive the offers failure")
	}
}
