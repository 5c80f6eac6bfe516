package main

import (
	"log"
	"net/http"
	"time"

	"stagelink/internal/api"
	"stagelink/internal/config"
	"stagelink/internal/session"
	"stagelink/internal/state"
	"stagelink/internal/views"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config

	sessionStore *session.Store
	stateStore   *state.Store
	apiClient    *api.Client

	auth    *views.Auth
	home    *views.Home
	offers  *views.YourOffers
	chat    *views.ChatPanel
	profile *views.Profile
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) *application {
	sessionStore := session.NewStore(cfg.Session.Path)
	stateStore := state.NewStore()
	httpClient := &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second}
	apiClient := api.NewClient(httpClient, cfg.Backend.URL, sessionStore)

	return &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		cfg:          cfg,
		sessionStore: sessionStore,
		stateStore:   stateStore,
		apiClient:    apiClient,
		auth:         &views.Auth{API: apiClient, Session: sessionStore, Store: stateStore},
		home:         &views.Home{API: apiClient, Store: stateStore},
		offers:       &views.YourOffers{API: apiClient, Store: stateStore},
		chat:         &views.ChatPanel{API: apiClient, Store: stateStore},
		profile:      &views.Profile{API: apiClient, Session: sessionStore, Store: stateStore},
	}
}

// details builds the single-offer view; one per offer id, unlike the
// long-lived views above.
func (app *application) details(offerID int) *views.OfferDetails {
	return &views.OfferDetails{API: app.apiClient, Store: app.stateStore, OfferID: offerID}
}
