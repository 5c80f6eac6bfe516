package models

// Match statuses as the backend reports them.
const (
	MatchPending   = "pending"
	MatchAccepted  = "accepted"
	MatchRejected  = "rejected"
	MatchWithdrawn = "withdrawn"
)

type Match struct {
	ID           int       `json:"matchId"`
	OfferID      int       `json:"offerId"`
	PerformerID  int       `json:"performerId"`
	Status       string    `json:"status"`
	Rate         float64   `json:"rate,omitempty"`
	ChatApproved bool      `json:"chatApproved"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    Timestamp `json:"createdAt,omitempty"`
}

type ChatApproval struct {
	PerformerID int  `json:"performerId"`
	Approved    bool `json:"approved"`
}

type Acceptance struct {
	PerformerID int `json:"performerId"`
}
