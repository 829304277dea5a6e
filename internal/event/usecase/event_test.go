package usecase

import (
	"context"
	"testing"
	"time"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/event"
	"ciblsport-api/internal/event/repository/inmem"
	"ciblsport-api/internal/model"
	pkgLog "ciblsport-api/pkg/log"
)

func newTestUsecase(t *testing.T) (event.UseCase, *dispatch.Dispatcher) {
	t.Helper()
	l := pkgLog.NewNoop()
	d := dispatch.New(nil)
	return New(l, inmem.New(l), d), d
}

func TestCreateDefaultsToScheduled(t *testing.T) {
	uc, _ := newTestUsecase(t)

	evt, err := uc.Create(context.Background(), model.Scope{UserID: "organizer-1"}, event.CreateInput{
		Name:  "Men's 200m Butterfly - Heats",
		Type:  model.EventTypeCompetition,
		Sport: "swimming",
		Venue: "Paris La Défense Arena",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if evt.Status != model.EventStatusScheduled {
		t.Errorf("status = %q, want %q", evt.Status, model.EventStatusScheduled)
	}
	if evt.CreatedBy != "organizer-1" {
		t.Errorf("createdBy = %q, want organizer-1", evt.CreatedBy)
	}
}

func TestCreateRequiresNameAndVenue(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.Create(context.Background(), model.Scope{}, event.CreateInput{Name: "x"}); err != event.ErrFieldRequired {
		t.Errorf("Create() error = %v, want %v", err, event.ErrFieldRequired)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Create(context.Background(), model.Scope{}, event.CreateInput{
		Name:   "x",
		Venue:  "y",
		Status: "postponed",
	})
	if err != event.ErrInvalidStatus {
		t.Errorf("Create() error = %v, want %v", err, event.ErrInvalidStatus)
	}
}

func TestListFiltersAndSortsByStartTime(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	now := time.Now()

	for _, e := range []event.CreateInput{
		{Name: "Later", Venue: "A", Sport: "swimming", StartTime: now.Add(2 * time.Hour)},
		{Name: "Sooner", Venue: "A", Sport: "swimming", StartTime: now.Add(time.Hour)},
		{Name: "Elsewhere", Venue: "B", Sport: "diving", StartTime: now},
	} {
		if _, err := uc.Create(ctx, sc, e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	out, err := uc.List(ctx, sc, event.ListInput{Filter: event.Filter{Venue: "A"}})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out.Events) != 2 {
		t.Fatalf("filtered events = %d, want 2", len(out.Events))
	}
	if out.Events[0].Name != "Sooner" || out.Events[1].Name != "Later" {
		t.Errorf("events not sorted by start time: %q, %q", out.Events[0].Name, out.Events[1].Name)
	}
}

func TestUpdateStatusPublishesCompletedOnce(t *testing.T) {
	uc, d := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	var completed int
	d.Subscribe(dispatch.HandlerFunc(func(ctx context.Context, e dispatch.Event) {
		if e.Type == dispatch.EventTypeEventCompleted {
			completed++
		}
	}))

	evt, err := uc.Create(ctx, sc, event.CreateInput{Name: "Final", Venue: "A"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := uc.UpdateStatus(ctx, sc, event.UpdateStatusInput{ID: evt.ID, Status: model.EventStatusInProgress}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if completed != 0 {
		t.Fatalf("completed events published before completion: %d", completed)
	}

	if _, err := uc.UpdateStatus(ctx, sc, event.UpdateStatusInput{ID: evt.ID, Status: model.EventStatusCompleted}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if completed != 1 {
		t.Fatalf("completed events published = %d, want 1", completed)
	}

	// Setting completed again must not re-publish.
	if _, err := uc.UpdateStatus(ctx, sc, event.UpdateStatusInput{ID: evt.ID, Status: model.EventStatusCompleted}); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if completed != 1 {
		t.Errorf("completed events published = %d after repeat, want 1", completed)
	}
}

func TestUpdateStatusUnknownEvent(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.UpdateStatus(context.Background(), model.Scope{}, event.UpdateStatusInput{
		ID:     "missing",
		Status: model.EventStatusCompleted,
	})
	if err != event.ErrEventNotFound {
		t.Errorf("UpdateStatus() error = %v, want %v", err, event.ErrEventNotFound)
	}
}

func TestDetailUnknownEvent(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.Detail(context.Background(), model.Scope{}, "missing"); err != event.ErrEventNotFound {
		t.Errorf("Detail() error = %v, want %v", err, event.ErrEventNotFound)
	}
}
