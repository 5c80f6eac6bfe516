package views

import (
	"context"
	"sync"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/state"
)

const (
	latestUsersLimit = 3
	feedLimit        = 10
)

// Home is the landing page: newest performers, newest venues and the
// role-filtered offers feed. Each panel fails independently; an error
// in one never blanks the others.
type Home struct {
	API   *api.Client
	Store *state.Store

	live liveness
}

type HomeData struct {
	Performers    []models.User
	PerformersErr string
	Venues        []models.User
	VenuesErr     string
	Offers        []models.Offer
	OffersErr     string
}

func (h *Home) Load(ctx context.Context) (HomeData, error) {
	gen := h.live.next()
	role := rules.Classify(roleOf(h.Store.CurrentUser()))

	var data HomeData
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, err := h.API.LatestUsers(ctx, "performer", latestUsersLimit)
		if err != nil {
			data.PerformersErr = err.Error()
			return
		}
		data.Performers = users
	}()
	go func() {
		defer wg.Done()
		users, err := h.API.LatestUsers(ctx, "distributor", latestUsersLimit)
		if err != nil {
			data.VenuesErr = err.Error()
			return
		}
		data.Venues = users
	}()

	// Venues get no feed at all; everyone else gets the role-filtered
	// recent offers.
	if !role.IsVenue() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			offers, err := h.API.ListOffers(ctx)
			if err != nil {
				data.OffersErr = err.Error()
				return
			}
			data.Offers = rules.FilterFeed(rules.Head(offers, feedLimit), role)
		}()
	}

	wg.Wait()
	if !h.live.current(gen) {
		return HomeData{}, ErrStale
	}
	return data, nil
}

func roleOf(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Role
}
