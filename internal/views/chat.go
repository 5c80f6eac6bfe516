package views

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/state"
)

// ChatPanel is the floating chat widget: the user's relevant offers
// (created for venue/admin, applied for performers), one active thread
// at a time, pull-based refresh. It keeps its own state because the
// panel outlives individual loads; stale responses from a switched
// offer are discarded by the liveness guard.
type ChatPanel struct {
	API   *api.Client
	Store *state.Store

	mu            sync.Mutex
	open          bool
	offers        []models.Offer
	offersErr     string
	activeOfferID int
	messages      []models.Message
	messagesErr   string
	blocked       bool

	live liveness
}

type ChatData struct {
	Open          bool
	Offers        []models.Offer
	OffersErr     string
	ActiveOfferID int
	Messages      []models.Message
	MessagesErr   string
	Blocked       bool
}

// Open loads the offer selector and, when an offer is available, its
// thread. The first offer is selected when none is active yet.
func (p *ChatPanel) Open(ctx context.Context) error {
	user := p.Store.CurrentUser()
	if user == nil {
		return models.ErrNotLoggedIn
	}
	role := rules.Classify(user.Role)

	p.mu.Lock()
	p.open = true
	p.offersErr = ""
	p.mu.Unlock()

	var offers []models.Offer
	var err error
	if role.IsVenue() || role.IsAdmin() {
		offers, err = p.API.CreatedOffers(ctx, user.ID)
	} else {
		offers, err = p.API.AppliedOffers(ctx, user.ID)
	}

	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return ErrStale
	}
	if err != nil {
		p.offersErr = err.Error()
		p.mu.Unlock()
		return nil
	}
	p.offers = offers
	if p.activeOfferID == 0 && len(offers) > 0 {
		p.activeOfferID = offers[0].ID
	}
	active := p.activeOfferID
	p.mu.Unlock()

	if active == 0 {
		return nil
	}
	return p.LoadMessages(ctx)
}

func (p *ChatPanel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// SetActiveOffer switches the thread and reloads it. A load still in
// flight for the previous offer gets discarded by its generation.
func (p *ChatPanel) SetActiveOffer(ctx context.Context, offerID int) error {
	p.mu.Lock()
	p.activeOfferID = offerID
	p.mu.Unlock()
	return p.LoadMessages(ctx)
}

// LoadMessages pulls the active thread and re-derives the chat gate: a
// 403 flips Blocked on, anything else surfaces as an inline error.
func (p *ChatPanel) LoadMessages(ctx context.Context) error {
	p.mu.Lock()
	offerID := p.activeOfferID
	p.mu.Unlock()
	if offerID == 0 {
		return nil
	}
	gen := p.live.next()

	messages, err := p.API.ListMessages(ctx, offerID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live.current(gen) {
		return ErrStale
	}
	p.messagesErr = ""
	p.blocked = false
	switch {
	case errors.Is(err, models.ErrChatNotApproved):
		p.blocked = true
	case err != nil:
		p.messagesErr = err.Error()
	default:
		p.messages = messages
	}
	return nil
}

// Send posts to the active thread and reloads it. The compose box is
// suppressed while blocked, and a 403 on the send path re-blocks even
// if the last read succeeded.
func (p *ChatPanel) Send(ctx context.Context, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return errors.New("message body is empty")
	}

	p.mu.Lock()
	offerID := p.activeOfferID
	blocked := p.blocked
	p.mu.Unlock()
	if offerID == 0 {
		return errors.New("no offer selected")
	}
	if blocked {
		return models.ErrChatNotApproved
	}

	if _, err := p.API.SendMessage(ctx, offerID, body); err != nil {
		if errors.Is(err, models.ErrChatNotApproved) {
			p.mu.Lock()
			p.blocked = true
			p.mu.Unlock()
		}
		return err
	}
	return p.LoadMessages(ctx)
}

// Snapshot returns a copy of the panel state for rendering.
func (p *ChatPanel) Snapshot() ChatData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ChatData{
		Open:          p.open,
		Offers:        p.offers,
		OffersErr:     p.offersErr,
		ActiveOfferID: p.activeOfferID,
		Messages:      p.messages,
		MessagesErr:   p.messagesErr,
		Blocked:       p.blocked,
	}
}
