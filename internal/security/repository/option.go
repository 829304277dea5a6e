package repository

import "ciblsport-api/internal/model"

// IncidentFilter contains filtering options for incident queries.
type IncidentFilter struct {
	Status   string
	Severity string
	Type     string
	Venue    string
}

// CreateIncidentOptions contains options for creating an incident.
type CreateIncidentOptions struct {
	Incident model.Incident
}

// UpdateIncidentOptions contains options for updating an incident.
type UpdateIncidentOptions struct {
	Incident model.Incident
}

// ListIncidentOptions contains options for listing incidents.
type ListIncidentOptions struct {
	Filter IncidentFilter
}

// CreateAlertOptions contains options for creating an alert.
type CreateAlertOptions struct {
	Alert model.Alert
}

// UpdateAlertOptions contains options for updating an alert.
type UpdateAlertOptions struct {
	Alert model.Alert
}
