package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn     = errors.New("models: not logged in")
	ErrChatNotApproved = errors.New("models: chat not approved by the venue")
	ErrInvalidScore    = errors.New("models: score must be between 1 and 5")
	ErrNotEligible     = errors.New("models: not eligible for this action")
	ErrOfferFinalized  = errors.New("models: offer is already finalized")
)

// APIError carries a non-2xx backend response with its message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
