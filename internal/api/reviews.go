package api

import (
	"context"
	"fmt"
	"net/http"

	"stagelink/internal/models"
)

// CreateReview posts a review for the other principal of a concluded
// offer.
func (c *Client) CreateReview(ctx context.Context, draft models.ReviewDraft) (models.Review, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/reviews", draft)
	if err != nil {
		return models.Review{}, err
	}
	var out models.Review
	if err := c.do(req, &out); err != nil {
		return models.Review{}, err
	}
	return out, nil
}

// DeleteReview removes a review (admin).
func (c *Client) DeleteReview(ctx context.Context, reviewID int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", reviewID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
