package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stagelink/internal/models"
)

// GetUser fetches a public profile.
func (c *Client) GetUser(ctx context.Context, userID int) (models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil)
	if err != nil {
		return models.User{}, err
	}
	var out models.User
	if err := c.do(req, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// UpdateUser updates a profile; the backend restricts it to self/admin.
func (c *Client) UpdateUser(ctx context.Context, userID int, update models.ProfileUpdate) (models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", userID), update)
	if err != nil {
		return models.User{}, err
	}
	var out models.User
	if err := c.do(req, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// LatestUsers lists the most recently registered users of a role.
func (c *Client) LatestUsers(ctx context.Context, role string, limit int) ([]models.User, error) {
	q := url.Values{}
	q.Set("role", role)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/api/users/latest?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	out := []models.User{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatedOffers lists the offers a venue created.
func (c *Client) CreatedOffers(ctx context.Context, userID int) ([]models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/offers/created", userID), nil)
	if err != nil {
		return nil, err
	}
	out := []models.Offer{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppliedOffers lists the offers a performer applied to. Rows carry
// matchId and matchStatus alongside the offer fields.
func (c *Client) AppliedOffers(ctx context.Context, userID int) ([]models.Offer, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/offers/applied", userID), nil)
	if err != nil {
		return nil, err
	}
	out := []models.Offer{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserReviews lists the reviews a user received.
func (c *Client) UserReviews(ctx context.Context, userID int) ([]models.Review, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/reviews", userID), nil)
	if err != nil {
		return nil, err
	}
	out := []models.Review{}
	if err := c.doList(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
