package repository

// Filter contains filtering options for notification queries.
type Filter struct {
	Type       string
	UnreadOnly bool
}

// ListOptions contains options for listing notifications.
type ListOptions struct {
	Filter Filter
}
