package views

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/session"
	"stagelink/internal/state"
)

func newAuth(t *testing.T, handler http.HandlerFunc) (*Auth, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.NewStore(filepath.Join(t.TempDir(), "session.yaml"))
	store := state.NewStore()
	return &Auth{
		API:     api.NewClient(server.Client(), server.URL, sess),
		Session: sess,
		Store:   store,
	}, sess
}

func liveToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestLoginPersistsSessionAndState(t *testing.T) {
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"token":"tok-1","user":{"userId":7,"role":"performer","name":"Ana"}}`)
	})

	user, err := auth.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user == nil || user.ID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sess.Token() != "tok-1" {
		t.Fatalf("token not persisted, got %q", sess.Token())
	}
	if auth.Store.CurrentUserID() != 7 {
		t.Fatal("login must dispatch set_user")
	}
}

func TestLoginValidatesInput(t *testing.T) {
	auth, _ := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty credentials must not reach the backend")
	})
	if _, err := auth.Login(context.Background(), "", ""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	auth, _ := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid role must not reach the backend")
	})
	_, err := auth.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "x", Role: "roadie"})
	if err == nil {
		t.Fatal("expected role validation error")
	}
}

func TestRehydrateFromCachedUser(t *testing.T) {
	calls := 0
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.WriteString(w, `{"userId":7,"role":"performer"}`)
	})
	if err := sess.SetSession(liveToken(t), &models.User{ID: 7, Name: "Ana", Role: "performer"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := auth.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if auth.Store.CurrentUserID() != 7 {
		t.Fatal("cached user must rehydrate into state")
	}
	if calls != 0 {
		t.Fatal("cached user must skip the network round trip")
	}
}

func TestRehydrateFetchesProfileWithTokenOnly(t *testing.T) {
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, `{"userId":4,"role":"distributor","name":"Club"}`)
	})
	if err := sess.SetSession(liveToken(t), nil); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := auth.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if auth.Store.CurrentUserID() != 4 {
		t.Fatal("token-only session must refetch the profile")
	}
	if sess.User() == nil || sess.User().ID != 4 {
		t.Fatal("refetched profile must be recached")
	}
}

func TestRehydrateClearsExpiredToken(t *testing.T) {
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expired token must not reach the backend")
	})
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Hour).Unix()})
	signed, _ := expired.SignedString([]byte("k"))
	if err := sess.SetSession(signed, &models.User{ID: 7}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := auth.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if sess.Token() != "" {
		t.Fatal("expired token must be cleared")
	}
	if auth.Store.CurrentUser() != nil {
		t.Fatal("expired session must stay logged out")
	}
}

func TestRehydrateClearsRejectedToken(t *testing.T) {
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"token revoked"}`)
	})
	if err := sess.SetSession(liveToken(t), nil); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if err := auth.Rehydrate(context.Background()); err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if sess.Token() != "" {
		t.Fatal("rejected token must be cleared")
	}
}

func TestLogout(t *testing.T) {
	auth, sess := newAuth(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"token":"tok-1","user":{"userId":7,"role":"performer"}}`)
	})
	if _, err := auth.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := auth.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sess.Token() != "" || auth.Store.CurrentUser() != nil {
		t.Fatal("logout must clear both session and state")
	}
}
