package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"stagelink/internal/models"
)

// ListOffers fetches the offers feed.
func (c *Client) ListOffers(ctx context.Context) ([]models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/offers", nil)
	if err != nil {
		return nil, err
	}
	out := []models.Offer{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOffer fetches one offer.
func (c *Client) GetOffer(ctx context.Context, offerID int) (models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/offers/%d", offerID), nil)
	if err != nil {
		return models.Offer{}, err
	}
	var out models.Offer
	if err := c.do(req, &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}

// CreateOffer posts a new gig offer (venue only).
func (c *Client) CreateOffer(ctx context.Context, draft models.OfferDraft) (models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/offers", draft)
	if err != nil {
		return models.Offer{}, err
	}
	var out models.Offer
	if err := c.do(req, &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}

// Apply submits a performer's application with a proposed rate.
func (c *Client) Apply(ctx context.Context, offerID int, application models.Application) (models.Match, error) {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/offers/%d/apply", offerID), application)
	if err != nil {
		return models.Match{}, err
	}
	var out models.Match
	if err := c.do(req, &out); err != nil {
		return models.Match{}, err
	}
	return out, nil
}

// ListMatches lists the applicants of an offer (venue/admin only).
func (c *Client) ListMatches(ctx context.Context, offerID int) ([]models.Match, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/offers/%d/matches", offerID), nil)
	if err != nil {
		return nil, err
	}
	out := []models.Match{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveChat toggles a performer's chat access on an offer.
func (c *Client) ApproveChat(ctx context.Context, offerID int, approval models.ChatApproval) error {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/offers/%d/approve-chat", offerID), approval)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// AcceptPerformer accepts an applicant. Some backends wrap the updated
// offer in {"offer": ...}, others return it bare.
func (c *Client) AcceptPerformer(ctx context.Context, offerID, performerID int) (models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/offers/%d/accept", offerID), models.Acceptance{PerformerID: performerID})
	if err != nil {
		return models.Offer{}, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return models.Offer{}, err
	}

	var wrapped struct {
		Offer *models.Offer `json:"offer"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Offer != nil {
		return *wrapped.Offer, nil
	}
	var out models.Offer
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.Offer{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// Conclude moves an offer to a terminal status, "closed" or
// "cancelled", and returns the updated offer.
func (c *Client) Conclude(ctx context.Context, offerID int, status string) (models.Offer, error) {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/offers/%d/conclude", offerID), payload)
	if err != nil {
		return models.Offer{}, err
	}
	var out models.Offer
	if err := c.do(req, &out); err != nil {
		return models.Offer{}, err
	}
	return out, nil
}
