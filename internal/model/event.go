package model

import "time"

const (
	EventStatusScheduled  = "scheduled"
	EventStatusInProgress = "in-progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

const (
	EventTypeCompetition = "competition"
	EventTypeCeremony    = "ceremony"
	EventTypeTraining    = "training"
	EventTypeOther       = "other"
)

// Athlete is a roster entry on an event.
type Athlete struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Lane    int    `json:"lane,omitempty"`
	Seed    string `json:"seed,omitempty"`
}

// Event is a scheduled session at a venue. The athlete roster is fixed at
// creation; results attach to the event through the result domain.
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Sport           string    `json:"sport"`
	Discipline      string    `json:"discipline,omitempty"`
	Venue           string    `json:"venue"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	MaxParticipants int       `json:"maxParticipants,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	Athletes        []Athlete `json:"athletes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
