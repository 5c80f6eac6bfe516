package rules

import "stagelink/internal/models"

// ChatState is the viewer's standing with respect to an offer's thread.
type ChatState int

const (
	ChatBlocked ChatState = iota
	ChatAllowed
)

// ChatGate derives the chat state for a viewer. Venue and admin are
// never gated. A performer is gated on their own match's chatApproved
// flag; with no match loaded the performer stays blocked until the
// backend proves otherwise. The caller must still treat a 403 from the
// message endpoints as Blocked, since approval can be revoked between
// reads.
func ChatGate(role Role, own *models.Match) ChatState {
	switch role {
	case RoleVenue, RoleAdmin:
		return ChatAllowed
	case RolePerformer:
		if own != nil && own.ChatApproved {
			return ChatAllowed
		}
		return ChatBlocked
	default:
		return ChatBlocked
	}
}

// OwnMatch picks the performer's match out of an offer's match list.
func OwnMatch(matches []models.Match, performerID int) *models.Match {
	for i := range matches {
		if matches[i].PerformerID == performerID {
			return &matches[i]
		}
	}
	return nil
}
