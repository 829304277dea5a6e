package security

import "time"

type AddIncidentInput struct {
	Title            string
	Description      string
	Type             string
	Severity         string
	Location         string
	Venue            string
	AffectedAudience string
	AssignedTo       string
}

// UpdateIncidentInput carries partial updates; nil fields are left
// unchanged.
type UpdateIncidentInput struct {
	ID         string
	Status     *string
	Severity   *string
	AssignedTo *string
}

type AddIncidentUpdateInput struct {
	IncidentID string
	Message    string
	Author     string
}

type IncidentFilter struct {
	Status   string
	Severity string
	Type     string
	Venue    string
}

type ListIncidentsInput struct {
	Filter IncidentFilter
}

type CreateAlertInput struct {
	Title     string
	Message   string
	Type      string
	Venue     string
	ExpiresAt *time.Time
}
