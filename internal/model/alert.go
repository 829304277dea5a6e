package model

import "time"

const (
	AlertTypeInfo      = "info"
	AlertTypeWarning   = "warning"
	AlertTypeEmergency = "emergency"
)

// Alert is a broadcast-style message, distinct from a personal
// notification. It may be venue-scoped and time-limited; deactivation is
// one-way (dismissal or expiry sweep).
type Alert struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Venue     string     `json:"venue,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the alert has a defined expiry in the past.
func (a Alert) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}
