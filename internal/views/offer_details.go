package views

import (
	"context"
	"errors"
	"fmt"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/state"
)

// OfferDetails is the single-offer page: the offer itself, the
// applicant list (venue/admin), the chat thread with its gate, and the
// apply/accept/approve/conclude/review actions.
type OfferDetails struct {
	API     *api.Client
	Store   *state.Store
	OfferID int

	live liveness
}

type OfferDetailsData struct {
	Offer     models.Offer
	Concluded bool

	Matches    []models.Match
	MatchesErr string

	Messages    []models.Message
	MessagesErr string
	ChatBlocked bool

	CanReview      bool
	ReviewTargetID int
	CounterpartID  int
}

// Load fetches the offer and its side panels. A failing offer fetch is
// fatal to the page; the panels degrade to inline errors. Eligibility
// derivations run on every load so a conclude immediately unlocks the
// review box.
func (v *OfferDetails) Load(ctx context.Context) (OfferDetailsData, error) {
	gen := v.live.next()
	meID := v.Store.CurrentUserID()
	role := rules.Classify(roleOf(v.Store.CurrentUser()))

	offer, err := v.API.GetOffer(ctx, v.OfferID)
	if err != nil {
		return OfferDetailsData{}, err
	}

	data := OfferDetailsData{Offer: offer, Concluded: rules.IsFinalized(offer)}

	if role.IsVenue() || role.IsAdmin() {
		matches, err := v.API.ListMatches(ctx, v.OfferID)
		if err != nil {
			data.MatchesErr = err.Error()
		} else {
			data.Matches = matches
		}
	}

	// Venue and admin are never gated, so a 403 for them is a real
	// error, not the approval gate.
	gate := rules.ChatGate(role, rules.OwnMatch(data.Matches, meID))
	messages, err := v.API.ListMessages(ctx, v.OfferID)
	switch {
	case errors.Is(err, models.ErrChatNotApproved) && gate == rules.ChatBlocked:
		data.ChatBlocked = true
	case err != nil:
		data.MessagesErr = err.Error()
	default:
		data.Messages = messages
	}

	data.CanReview = rules.CanReview(offer, meID, role)
	data.ReviewTargetID = rules.ReviewTarget(offer, meID, role)
	data.CounterpartID = rules.Counterpart(offer, data.Messages, meID, role)

	if !v.live.current(gen) {
		return OfferDetailsData{}, ErrStale
	}
	return data, nil
}

// Apply submits a performer application. Validation mirrors the form:
// performers only, logged in, non-negative rate.
func (v *OfferDetails) Apply(ctx context.Context, rate float64, message string) (models.Match, error) {
	if v.Store.CurrentUserID() == 0 {
		return models.Match{}, models.ErrNotLoggedIn
	}
	if !rules.Classify(roleOf(v.Store.CurrentUser())).IsPerformer() {
		return models.Match{}, fmt.Errorf("%w: only performers can apply", models.ErrNotEligible)
	}
	if rate < 0 {
		return models.Match{}, errors.New("rate is required and must not be negative")
	}
	return v.API.Apply(ctx, v.OfferID, models.Application{Rate: rate, Message: message})
}

// SendMessage posts to the thread. A 403 from the send path re-derives
// the blocked state, since approval can flip between reads.
func (v *OfferDetails) SendMessage(ctx context.Context, body string) (models.Message, error) {
	if body == "" {
		return models.Message{}, errors.New("message body is empty")
	}
	return v.API.SendMessage(ctx, v.OfferID, body)
}

// ApproveChat toggles a performer's gate and returns the refreshed
// applicant list.
func (v *OfferDetails) ApproveChat(ctx context.Context, performerID int, approved bool) ([]models.Match, error) {
	if err := v.API.ApproveChat(ctx, v.OfferID, models.ChatApproval{PerformerID: performerID, Approved: approved}); err != nil {
		return nil, err
	}
	return v.API.ListMatches(ctx, v.OfferID)
}

// Accept accepts an applicant and returns the updated offer.
func (v *OfferDetails) Accept(ctx context.Context, performerID int) (models.Offer, error) {
	return v.API.AcceptPerformer(ctx, v.OfferID, performerID)
}

// Conclude moves the offer to closed or cancelled. Already-finalized
// offers are refused client-side, matching the disabled buttons.
func (v *OfferDetails) Conclude(ctx context.Context, current models.Offer, status string) (models.Offer, error) {
	if rules.IsFinalized(current) {
		return models.Offer{}, models.ErrOfferFinalized
	}
	if !rules.ValidConclusion(status) {
		return models.Offer{}, fmt.Errorf("status must be %q or %q", rules.StatusClosed, rules.StatusCancelled)
	}
	return v.API.Conclude(ctx, v.OfferID, status)
}

// SubmitReview re-derives eligibility against the given offer snapshot
// and rejects an out-of-range score before any network call.
func (v *OfferDetails) SubmitReview(ctx context.Context, offer models.Offer, score int, comment string) (models.Review, error) {
	meID := v.Store.CurrentUserID()
	role := rules.Classify(roleOf(v.Store.CurrentUser()))

	target := rules.ReviewTarget(offer, meID, role)
	if target == 0 {
		return models.Review{}, models.ErrNotEligible
	}
	if !rules.ValidScore(score) {
		return models.Review{}, models.ErrInvalidScore
	}
	return v.API.CreateReview(ctx, models.ReviewDraft{
		RaterID: meID,
		RatedID: target,
		OfferID: offer.ID,
		Score:   score,
		Comment: comment,
	})
}
