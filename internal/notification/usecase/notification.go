package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification"
	"ciblsport-api/internal/notification/repository"
	"ciblsport-api/pkg/paginator"
)

func validType(notificationType string) bool {
	switch notificationType {
	case model.NotificationTypeResult, model.NotificationTypeSecurity,
		model.NotificationTypeEvent, model.NotificationTypeSystem,
		model.NotificationTypePersonal:
		return true
	}
	return false
}

func (uc *usecase) Add(ctx context.Context, ip notification.AddInput) (model.Notification, bool, error) {
	if !validType(ip.Type) {
		return model.Notification{}, false, notification.ErrInvalidType
	}

	prefs, err := uc.prefRepo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Add.GetPreferences: %v", err)
		return model.Notification{}, false, err
	}

	// Preference gating: a muted type is dropped silently, not queued.
	if !prefs.Allows(ip.Type) {
		return model.Notification{}, false, nil
	}

	priority := ip.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      ip.Type,
		Title:     ip.Title,
		Message:   ip.Message,
		Priority:  priority,
		Category:  ip.Category,
		ActionURL: ip.ActionURL,
		Read:      false,
		CreatedAt: time.Now(),
	}

	created, err := uc.repo.Insert(ctx, n)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.Add: %v", err)
		return model.Notification{}, false, err
	}

	uc.deliver(ctx, created, prefs)

	return created, true, nil
}

// deliver pushes the notification out on the enabled channels. Delivery is
// fire-and-forget, channel failures never fail the Add.
func (uc *usecase) deliver(ctx context.Context, n model.Notification, prefs model.Preferences) {
	if prefs.Desktop && uc.pushChannel != nil {
		go func() {
			pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := uc.pushChannel.SendNotification(pushCtx, n.Title, n.Message, map[string]string{
				"type":     n.Type,
				"priority": n.Priority,
			}); err != nil {
				uc.l.Warnf(pushCtx, "internal.notification.usecase.deliver: %v", err)
			}
		}()
	}
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip notification.ListInput) (notification.ListOutput, error) {
	items, err := uc.repo.List(ctx, repository.ListOptions{
		Filter: repository.Filter{
			Type:       ip.Filter.Type,
			UnreadOnly: ip.Filter.UnreadOnly,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.List: %v", err)
		return notification.ListOutput{}, err
	}

	unread, err := uc.repo.UnreadCount(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.List.UnreadCount: %v", err)
		return notification.ListOutput{}, err
	}

	page, pag := paginator.PaginateSlice(items, ip.PaginateQuery)
	return notification.ListOutput{
		Notifications: page,
		UnreadCount:   unread,
		Paginator:     pag,
	}, nil
}

func (uc *usecase) MarkAsRead(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.MarkAsRead(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkAsRead: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) MarkAllAsRead(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.MarkAllAsRead(ctx); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkAllAsRead: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) Remove(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.Remove: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) ClearAll(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.DeleteAll(ctx); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ClearAll: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) UnreadCount(ctx context.Context, sc model.Scope) (int, error) {
	count, err := uc.repo.UnreadCount(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UnreadCount: %v", err)
		return 0, err
	}
	return count, nil
}

func (uc *usecase) GetPreferences(ctx context.Context, sc model.Scope) (model.Preferences, error) {
	prefs, err := uc.prefRepo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.GetPreferences: %v", err)
		return model.Preferences{}, err
	}
	return prefs, nil
}

func (uc *usecase) UpdatePreferences(ctx context.Context, sc model.Scope, ip notification.UpdatePreferencesInput) (model.Preferences, error) {
	prefs, err := uc.prefRepo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UpdatePreferences.Get: %v", err)
		return model.Preferences{}, err
	}

	// Partial merge, fields left out of the request keep their value.
	if ip.Results != nil {
		prefs.Results = *ip.Results
	}
	if ip.Security != nil {
		prefs.Security = *ip.Security
	}
	if ip.Events != nil {
		prefs.Events = *ip.Events
	}
	if ip.Personal != nil {
		prefs.Personal = *ip.Personal
	}
	if ip.System != nil {
		prefs.System = *ip.System
	}
	if ip.Sound != nil {
		prefs.Sound = *ip.Sound
	}
	if ip.Desktop != nil {
		prefs.Desktop = *ip.Desktop
	}

	if err := uc.prefRepo.Save(ctx, prefs); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UpdatePreferences: %v", err)
		return model.Preferences{}, err
	}
	return prefs, nil
}
