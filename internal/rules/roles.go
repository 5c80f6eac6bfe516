package rules

import "strings"

// Role is the classified role of the current viewer. The wire carries
// "distributor" for venues; legacy data may still say "venue", so both
// are aliased here and nowhere else.
type Role string

const (
	RolePerformer Role = "performer"
	RoleVenue     Role = "distributor"
	RoleAdmin     Role = "admin"
	RoleGuest     Role = ""
)

func Classify(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "performer":
		return RolePerformer
	case "distributor", "venue":
		return RoleVenue
	case "admin":
		return RoleAdmin
	default:
		return RoleGuest
	}
}

func (r Role) IsPerformer() bool { return r == RolePerformer }
func (r Role) IsVenue() bool     { return r == RoleVenue }
func (r Role) IsAdmin() bool     { return r == RoleAdmin }
func (r Role) IsGuest() bool     { return r == RoleGuest }
