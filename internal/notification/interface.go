package notification

import (
	"context"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add creates a notification if the current preferences allow its
	// type. The boolean reports whether the notification was created.
	Add(ctx context.Context, ip AddInput) (model.Notification, bool, error)

	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
	MarkAsRead(ctx context.Context, sc model.Scope, id string) error
	MarkAllAsRead(ctx context.Context, sc model.Scope) error
	Remove(ctx context.Context, sc model.Scope, id string) error
	ClearAll(ctx context.Context, sc model.Scope) error
	UnreadCount(ctx context.Context, sc model.Scope) (int, error)

	GetPreferences(ctx context.Context, sc model.Scope) (model.Preferences, error)

	// UpdatePreferences merges the non-nil fields of ip into the current
	// preference set and persists the result.
	UpdatePreferences(ctx context.Context, sc model.Scope, ip UpdatePreferencesInput) (model.Preferences, error)

	// HandleEvent subscribes the feed to domain events.
	HandleEvent(ctx context.Context, evt dispatch.Event)

	// RunSimulator emits demo notifications until ctx is done.
	RunSimulator(ctx context.Context)
}
