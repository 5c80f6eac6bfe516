package api

import (
	"context"
	"fmt"
	"net/http"

	"stagelink/internal/models"
)

// ListMessages fetches an offer's thread. A 403 means the venue has not
// approved chat for the caller and comes back as
// models.ErrChatNotApproved.
func (c *Client) ListMessages(ctx context.Context, offerID int) ([]models.Message, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/offers/%d/messages", offerID), nil)
	if err != nil {
		return nil, err
	}
	out := []models.Message{}
	if err := c.doList(req, &out); err != nil {
		return nil, chatGateErr(err)
	}
	return out, nil
}

// SendMessage posts to an offer's thread. The 403 mapping applies here
// too: approval can be revoked between a read and a send.
func (c *Client) SendMessage(ctx context.Context, offerID int, body string) (models.Message, error) {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/api/offers/%d/messages", offerID), models.SendMessageRequest{Body: body})
	if err != nil {
		return models.Message{}, err
	}
	var out models.Message
	if err := c.do(req, &out); err != nil {
		return models.Message{}, chatGateErr(err)
	}
	return out, nil
}
