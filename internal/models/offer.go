package models

type Offer struct {
	ID                  int       `json:"offerId"`
	DistributorID       int       `json:"distributorId"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	City                string    `json:"city,omitempty"`
	VenueName           string    `json:"venueName,omitempty"`
	Genre               string    `json:"genre,omitempty"`
	Budget              float64   `json:"budget,omitempty"`
	Status              string    `json:"status"`
	EventDate           Timestamp `json:"eventDate,omitempty"`
	Capacity            int       `json:"capacity,omitempty"`
	AcceptedPerformerID int       `json:"acceptedPerformerId,omitempty"`
	CreatedAt           Timestamp `json:"createdAt,omitempty"`

	// Present only on rows returned by the applied-offers endpoint.
	MatchID     int    `json:"matchId,omitempty"`
	MatchStatus string `json:"matchStatus,omitempty"`
}

type OfferDraft struct {
	DistributorID int     `json:"distributorId,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	City          string  `json:"city"`
	VenueName     string  `json:"venueName"`
	Genre         string  `json:"genre,omitempty"`
	Budget        float64 `json:"budget,omitempty"`
	EventDate     string  `json:"eventDate"`
	Capacity      int     `json:"capacity,omitempty"`
}

// Application is a performer's response to an offer.
type Application struct {
	Rate    float64 `json:"rate"`
	Message string  `json:"message,omitempty"`
}
