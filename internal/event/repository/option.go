package repository

import "ciblsport-api/internal/model"

// Filter contains filtering options for event queries.
type Filter struct {
	Status string
	Venue  string
	Type   string
	Sport  string
}

// CreateOptions contains options for creating an event.
type CreateOptions struct {
	Event model.Event
}

// ListOptions contains options for listing events.
type ListOptions struct {
	Filter Filter
}

// UpdateOptions contains options for updating an event.
type UpdateOptions struct {
	Event model.Event
}
