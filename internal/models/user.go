package models

type User struct {
	ID              int        `json:"userId"`
	Email           string     `json:"email,omitempty"`
	Name            string     `json:"name"`
	City            string     `json:"city"`
	Role            string     `json:"role"`
	AvatarURL       string     `json:"avatarUrl,omitempty"`
	Capacity        int        `json:"capacity,omitempty"`
	RatingAvg       float64    `json:"ratingAvg"`
	RatingCount     int        `json:"ratingCount"`
	Genre           string     `json:"genre,omitempty"`
	Slogan          string     `json:"slogan,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	Musicians       []Musician `json:"musicians,omitempty"`
	EventsFinalised int        `json:"eventsFinalised,omitempty"`
	CreatedAt       Timestamp  `json:"createdAt,omitempty"`
}

type Musician struct {
	Name       string `json:"name"`
	Instrument string `json:"instrument"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	City      string `json:"city"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Capacity  int    `json:"capacity,omitempty"`
}

// AuthResponse is what login (and some register backends) return.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type ProfileUpdate struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Capacity  int    `json:"capacity,omitempty"`
	Slogan    string `json:"slogan,omitempty"`
	Bio       string `json:"bio,omitempty"`
}
