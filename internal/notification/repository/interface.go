package repository

import (
	"context"
	"errors"

	"ciblsport-api/internal/model"
)

var ErrNotFound = errors.New("not found")

// Repository stores the notification feed. Implementations enforce the
// feed cap: inserting past model.MaxNotifications evicts the oldest entry.
//
//go:generate mockery --name Repository
type Repository interface {
	Insert(ctx context.Context, n model.Notification) (model.Notification, error)
	List(ctx context.Context, opts ListOptions) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

//go:generate mockery --name PreferenceRepository
type PreferenceRepository interface {
	Get(ctx context.Context) (model.Preferences, error)
	Save(ctx context.Context, prefs model.Preferences) error
}
