package model

import "time"

const (
	NotificationTypeResult   = "result"
	NotificationTypeSecurity = "security"
	NotificationTypeEvent    = "event"
	NotificationTypeSystem   = "system"
	NotificationTypePersonal = "personal"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// MaxNotifications bounds the feed; the oldest entry is evicted on overflow.
const MaxNotifications = 50

// Notification is a single feed entry. Only the read flag mutates after
// creation.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Category  string    `json:"category,omitempty"`
	ActionURL string    `json:"actionUrl,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Preferences gates notification creation per type, plus the two delivery
// channels. A notification is only created when its type's flag is true.
type Preferences struct {
	Results  bool `json:"results"`
	Security bool `json:"security"`
	Events   bool `json:"events"`
	Personal bool `json:"personal"`
	System   bool `json:"system"`
	Sound    bool `json:"sound"`
	Desktop  bool `json:"desktop"`
}

// DefaultPreferences returns the initial preference set: everything on
// except system notices.
func DefaultPreferences() Preferences {
	return Preferences{
		Results:  true,
		Security: true,
		Events:   true,
		Personal: true,
		System:   false,
		Sound:    true,
		Desktop:  true,
	}
}

// Allows reports whether a notification of the given type passes the
// preference filter.
func (p Preferences) Allows(notificationType string) bool {
	switch notificationType {
	case NotificationTypeResult:
		return p.Results
	case NotificationTypeSecurity:
		return p.Security
	case NotificationTypeEvent:
		return p.Events
	case NotificationTypePersonal:
		return p.Personal
	case NotificationTypeSystem:
		return p.System
	default:
		return false
	}
}
