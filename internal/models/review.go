package models

type Review struct {
	ID        int       `json:"reviewId"`
	RaterID   int       `json:"raterId"`
	RatedID   int       `json:"ratedId"`
	OfferID   int       `json:"offerId,omitempty"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
}

type ReviewDraft struct {
	RaterID int    `json:"raterId"`
	RatedID int    `json:"ratedId"`
	OfferID int    `json:"offerId,omitempty"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}
