package state

import (
	"sync"

	"stagelink/internal/models"
)

// State is the whole of the client's shared application state. Views
// receive the container by injection; nothing here is global.
type State struct {
	CurrentUser *models.User
}

type ActionType string

const (
	ActionSetUser ActionType = "set_user"
	ActionLogout  ActionType = "logout"
)

type Action struct {
	Type ActionType
	User *models.User
}

// Reduce is the pure transition function. Unknown actions leave the
// state untouched.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetUser:
		s.CurrentUser = a.User
	case ActionLogout:
		s.CurrentUser = nil
	}
	return s
}

// Store holds the current state behind a mutex. All mutation goes
// through Dispatch and Reduce.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser is a convenience accessor; nil when logged out.
func (s *Store) CurrentUser() *models.User {
	return s.State().CurrentUser
}

// CurrentUserID is 0 when logged out.
func (s *Store) CurrentUserID() int {
	if u := s.CurrentUser(); u != nil {
		return u.ID
	}
	return 0
}
