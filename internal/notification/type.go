package notification

import (
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/paginator"
)

type AddInput struct {
	Type      string
	Title     string
	Message   string
	Priority  string
	Category  string
	ActionURL string
}

// UpdatePreferencesInput carries a partial preference change. Nil fields
// keep their current value.
type UpdatePreferencesInput struct {
	Results  *bool
	Security *bool
	Events   *bool
	Personal *bool
	System   *bool
	Sound    *bool
	Desktop  *bool
}

type Filter struct {
	Type       string
	UnreadOnly bool
}

type ListInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Notifications []model.Notification
	UnreadCount   int
	Paginator     paginator.Paginator
}
