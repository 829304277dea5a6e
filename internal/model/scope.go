package model

const (
	RoleAthlete   = "athlete"
	RoleOfficial  = "official"
	RoleSpectator = "spectator"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsOfficial checks if the scope has official role
func (s Scope) IsOfficial() bool {
	return s.Role == RoleOfficial
}

// IsStaff reports whether the caller may manage incidents and alerts.
func (s Scope) IsStaff() bool {
	return s.Role == RoleAdmin || s.Role == RoleOfficial || s.Role == RoleVolunteer
}
