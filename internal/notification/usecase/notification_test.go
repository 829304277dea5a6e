package usecase

import (
	"context"
	"fmt"
	"testing"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification"
	"ciblsport-api/internal/notification/repository/inmem"
	pkgLog "ciblsport-api/pkg/log"
)

func newTestUsecase(t *testing.T) notification.UseCase {
	t.Helper()
	l := pkgLog.NewNoop()
	return New(l, inmem.New(l), inmem.NewPreferenceRepository(l, ""), nil, Config{})
}

func TestAddDefaultsPriorityToMedium(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()

	n, queued, err := uc.Add(ctx, notification.AddInput{
		Type:    model.NotificationTypeResult,
		Title:   "New Result",
		Message: "someone finished",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !queued {
		t.Fatal("Add() queued = false, want true")
	}
	if n.Priority != model.PriorityMedium {
		t.Errorf("Add() priority = %q, want %q", n.Priority, model.PriorityMedium)
	}
	if n.Read {
		t.Error("Add() created notification already read")
	}
}

func TestAddRejectsInvalidType(t *testing.T) {
	uc := newTestUsecase(t)

	_, _, err := uc.Add(context.Background(), notification.AddInput{
		Type:    "gossip",
		Title:   "x",
		Message: "y",
	})
	if err != notification.ErrInvalidType {
		t.Errorf("Add() error = %v, want %v", err, notification.ErrInvalidType)
	}
}

func TestAddDropsMutedTypeSilently(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	// System notices are muted by default.
	_, queued, err := uc.Add(ctx, notification.AddInput{
		Type:    model.NotificationTypeSystem,
		Title:   "Maintenance",
		Message: "scheduled tonight",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if queued {
		t.Error("Add() queued a muted type")
	}

	out, err := uc.List(ctx, sc, notification.ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Notifications) != 0 {
		t.Errorf("feed has %d entries after muted Add, want 0", len(out.Notifications))
	}
}

func TestFeedCapEvictsOldest(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	for i := 0; i < model.MaxNotifications+5; i++ {
		_, _, err := uc.Add(ctx, notification.AddInput{
			Type:    model.NotificationTypeResult,
			Title:   "New Result",
			Message: fmt.Sprintf("result %d", i),
		})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	out, err := uc.List(ctx, sc, notification.ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// Pagination defaults to 20 per page, so check the unfiltered count.
	if out.Paginator.Total != int64(model.MaxNotifications) {
		t.Errorf("feed total = %d, want %d", out.Paginator.Total, model.MaxNotifications)
	}
	// Newest entry must be first.
	if len(out.Notifications) == 0 || out.Notifications[0].Message != fmt.Sprintf("result %d", model.MaxNotifications+4) {
		t.Errorf("newest notification not first in feed")
	}
}

func TestUnreadCountAndMarkAsRead(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	n1, _, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeEvent, Title: "a", Message: "m"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, _, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeEvent, Title: "b", Message: "m"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	count, err := uc.UnreadCount(ctx, sc)
	if err != nil {
		t.Fatalf("UnreadCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("UnreadCount() = %d, want 2", count)
	}

	if err := uc.MarkAsRead(ctx, sc, n1.ID); err != nil {
		t.Fatalf("MarkAsRead() error = %v", err)
	}
	count, _ = uc.UnreadCount(ctx, sc)
	if count != 1 {
		t.Errorf("UnreadCount() after MarkAsRead = %d, want 1", count)
	}

	// Marking the same notification again stays read, no error.
	if err := uc.MarkAsRead(ctx, sc, n1.ID); err != nil {
		t.Errorf("MarkAsRead() second call error = %v", err)
	}

	if err := uc.MarkAsRead(ctx, sc, "missing"); err != notification.ErrNotificationNotFound {
		t.Errorf("MarkAsRead(missing) error = %v, want %v", err, notification.ErrNotificationNotFound)
	}
}

func TestMarkAllAsReadIsIdempotent(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	for i := 0; i < 3; i++ {
		if _, _, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeResult, Title: "r", Message: "m"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := uc.MarkAllAsRead(ctx, sc); err != nil {
		t.Fatalf("MarkAllAsRead() error = %v", err)
	}
	if err := uc.MarkAllAsRead(ctx, sc); err != nil {
		t.Fatalf("MarkAllAsRead() second call error = %v", err)
	}

	count, _ := uc.UnreadCount(ctx, sc)
	if count != 0 {
		t.Errorf("UnreadCount() after MarkAllAsRead = %d, want 0", count)
	}
}

func TestClearAllEmptiesFeed(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	if _, _, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeResult, Title: "r", Message: "m"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := uc.ClearAll(ctx, sc); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	out, err := uc.List(ctx, sc, notification.ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Notifications) != 0 {
		t.Errorf("feed has %d entries after ClearAll, want 0", len(out.Notifications))
	}
}

func TestUpdatePreferencesGatesFollowingAdds(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	prefs, err := uc.GetPreferences(ctx, sc)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if !prefs.Results || prefs.System {
		t.Fatalf("unexpected default preferences: %+v", prefs)
	}

	muted := false
	if _, err := uc.UpdatePreferences(ctx, sc, notification.UpdatePreferencesInput{Results: &muted}); err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	_, queued, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeResult, Title: "r", Message: "m"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if queued {
		t.Error("Add() queued a result notification with results muted")
	}
}

func TestUpdatePreferencesMergesPartialInput(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	// Only sound is mentioned, every other flag must keep its value.
	sound := false
	prefs, err := uc.UpdatePreferences(ctx, sc, notification.UpdatePreferencesInput{Sound: &sound})
	if err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}
	if prefs.Sound {
		t.Error("sound still enabled after update")
	}
	if !prefs.Results || !prefs.Security || !prefs.Events || !prefs.Personal || !prefs.Desktop {
		t.Errorf("partial update changed unmentioned flags: %+v", prefs)
	}
	if prefs.System {
		t.Errorf("partial update enabled system: %+v", prefs)
	}

	// The merge still queues notifications for untouched categories.
	_, queued, err := uc.Add(ctx, notification.AddInput{Type: model.NotificationTypeResult, Title: "r", Message: "m"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !queued {
		t.Error("Add() dropped a result notification after an unrelated preference update")
	}
}
