package views

import (
	"context"
	"fmt"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/session"
	"stagelink/internal/state"
)

const cityOffersLimit = 6

// Profile is the own-profile page: the authenticated profile, received
// reviews, and for performers a teaser of open offers in their city.
type Profile struct {
	API     *api.Client
	Session *session.Store
	Store   *state.Store

	live liveness
}

type ProfileData struct {
	User models.User

	Reviews    []models.Review
	ReviewsErr string

	CityOffers    []models.Offer
	CityOffersErr string
}

func (v *Profile) Load(ctx context.Context) (ProfileData, error) {
	if v.Session.Token() == "" {
		return ProfileData{}, models.ErrNotLoggedIn
	}
	gen := v.live.next()

	me, err := v.API.Me(ctx)
	if err != nil {
		return ProfileData{}, err
	}
	v.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: &me})
	if err := v.Session.SetUser(&me); err != nil {
		return ProfileData{}, fmt.Errorf("persist session: %w", err)
	}

	data := ProfileData{User: me}

	reviews, err := v.API.UserReviews(ctx, me.ID)
	if err != nil {
		data.ReviewsErr = err.Error()
	} else {
		data.Reviews = reviews
	}

	if rules.Classify(me.Role).IsPerformer() && me.City != "" {
		offers, err := v.API.ListOffers(ctx)
		if err != nil {
			data.CityOffersErr = err.Error()
		} else {
			open := rules.FilterFeed(offers, rules.RolePerformer)
			data.CityOffers = rules.Head(rules.FilterCity(open, me.City), cityOffersLimit)
		}
	}

	if !v.live.current(gen) {
		return ProfileData{}, ErrStale
	}
	return data, nil
}

// Save updates the profile and refreshes the shared state and the
// session cache with the backend's copy.
func (v *Profile) Save(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	meID := v.Store.CurrentUserID()
	if meID == 0 {
		return models.User{}, models.ErrNotLoggedIn
	}
	updated, err := v.API.UpdateUser(ctx, meID, update)
	if err != nil {
		return models.User{}, err
	}
	v.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: &updated})
	if err := v.Session.SetUser(&updated); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return updated, nil
}

// CreateOffer posts a new offer; venue only. The distributor id is
// stamped from the current user.
func (v *Profile) CreateOffer(ctx context.Context, draft models.OfferDraft) (models.Offer, error) {
	user := v.Store.CurrentUser()
	if user == nil {
		return models.Offer{}, models.ErrNotLoggedIn
	}
	if !rules.Classify(user.Role).IsVenue() {
		return models.Offer{}, fmt.Errorf("%w: only venues can create offers", models.ErrNotEligible)
	}
	draft.DistributorID = user.ID
	return v.API.CreateOffer(ctx, draft)
}

// DeleteAccount removes the account and ends the session.
func (v *Profile) DeleteAccount(ctx context.Context) error {
	meID := v.Store.CurrentUserID()
	if meID == 0 {
		return models.ErrNotLoggedIn
	}
	if err := v.API.DeleteUser(ctx, meID); err != nil {
		return err
	}
	v.Store.Dispatch(state.Action{Type: state.ActionLogout})
	if err := v.Session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
