package models

type Message struct {
	ID        int       `json:"messageId"`
	OfferID   int       `json:"offerId"`
	AuthorID  int       `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
}

// SendMessageRequest is the body of POST /api/offers/:id/messages.
type SendMessageRequest struct {
	Body string `json:"body"`
}
