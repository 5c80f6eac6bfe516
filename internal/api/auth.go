package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"stagelink/internal/models"
)

// Login authenticates with email and password, returning the bearer
// token and the user profile.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (models.AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/login", creds)
	if err != nil {
		return models.AuthResponse{}, err
	}
	var out models.AuthResponse
	if err := c.do(req, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account. Deployments differ on the route name, so
// a 404 on /api/register retries the legacy /api/new-user path. Some
// backends return {token, user}, others the bare user; both are
// normalized into AuthResponse.
func (c *Client) Register(ctx context.Context, reg models.RegisterRequest) (models.AuthResponse, error) {
	out, err := c.register(ctx, "/api/register", reg)
	if err == nil {
		return out, nil
	}
	var apiErr *models.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return c.register(ctx, "/api/new-user", reg)
	}
	return models.AuthResponse{}, err
}

func (c *Client) register(ctx context.Context, path string, reg models.RegisterRequest) (models.AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, reg)
	if err != nil {
		return models.AuthResponse{}, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return models.AuthResponse{}, err
	}
	var resp models.AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if resp.User == nil {
		var user models.User
		if err := json.Unmarshal(raw, &user); err == nil && user.ID != 0 {
			resp.User = &user
		}
	}
	return resp, nil
}

// Me fetches the authenticated user's own profile.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return models.User{}, err
	}
	var out models.User
	if err := c.do(req, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}
