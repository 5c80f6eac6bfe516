package views

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/session"
	"stagelink/internal/state"
)

// Auth owns login, registration, logout and startup rehydration.
type Auth struct {
	API     *api.Client
	Session *session.Store
	Store   *state.Store
}

func (a *Auth) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	resp, err := a.API.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("backend returned no token")
	}

	user := resp.User
	if err := a.Session.SetSession(resp.Token, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	if user == nil {
		me, err := a.API.Me(ctx)
		if err != nil {
			return nil, err
		}
		user = &me
		if err := a.Session.SetUser(user); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}
	a.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: user})
	return user, nil
}

func (a *Auth) Register(ctx context.Context, reg models.RegisterRequest) (*models.User, error) {
	if rules.Classify(reg.Role).IsGuest() {
		return nil, errors.New("role must be performer, distributor or admin")
	}
	resp, err := a.API.Register(ctx, reg)
	if err != nil {
		return nil, err
	}

	// Some backends log the account in right away; otherwise the user
	// still has to go through login.
	if resp.Token != "" {
		if err := a.Session.SetSession(resp.Token, resp.User); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
		if resp.User != nil {
			a.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: resp.User})
		}
	}
	return resp.User, nil
}

func (a *Auth) Logout() error {
	a.Store.Dispatch(state.Action{Type: state.ActionLogout})
	if err := a.Session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Rehydrate restores the session at startup: the cached user wins when
// present; with only a token the profile is refetched and recached. An
// expired token is cleared so views fall back to guest behavior.
func (a *Auth) Rehydrate(ctx context.Context) error {
	if err := a.Session.Load(); err != nil {
		return err
	}
	if a.Session.Token() == "" {
		return nil
	}
	if a.Session.TokenExpired(time.Now()) {
		return a.Session.Clear()
	}

	if user := a.Session.User(); user != nil {
		a.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: user})
		return nil
	}

	me, err := a.API.Me(ctx)
	if err != nil {
		// A rejected token means a dead session, not a fatal startup.
		var apiErr *models.APIError
		if errors.As(err, &apiErr) {
			return a.Session.Clear()
		}
		return err
	}
	if err := a.Session.SetUser(&me); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.Store.Dispatch(state.Action{Type: state.ActionSetUser, User: &me})
	return nil
}
