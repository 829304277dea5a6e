package usecase

import (
	"context"
	"testing"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/event"
	eventInmem "ciblsport-api/internal/event/repository/inmem"
	eventUsecase "ciblsport-api/internal/event/usecase"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/result"
	"ciblsport-api/internal/result/repository/inmem"
	pkgLog "ciblsport-api/pkg/log"
)

func newTestUsecase(t *testing.T) (result.UseCase, event.UseCase, *dispatch.Dispatcher) {
	t.Helper()
	l := pkgLog.NewNoop()
	d := dispatch.New(nil)
	evRepo := eventInmem.New(l)
	resUC := New(l, inmem.New(l), evRepo, d)
	evUC := eventUsecase.New(l, evRepo, d)
	return resUC, evUC, d
}

func mustCreateEvent(t *testing.T, evUC event.UseCase) model.Event {
	t.Helper()
	evt, err := evUC.Create(context.Background(), model.Scope{}, event.CreateInput{
		Name:  "Women's 100m Freestyle - Final",
		Type:  model.EventTypeCompetition,
		Sport: "swimming",
		Venue: "Paris La Défense Arena",
	})
	if err != nil {
		t.Fatalf("event Create() error = %v", err)
	}
	return evt
}

func TestAddResultPublishesAndDefaultsStatus(t *testing.T) {
	resUC, evUC, d := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	evt := mustCreateEvent(t, evUC)

	var published []dispatch.Event
	d.Subscribe(dispatch.HandlerFunc(func(ctx context.Context, e dispatch.Event) {
		published = append(published, e)
	}))

	created, err := resUC.AddResult(ctx, sc, result.AddResultInput{
		EventID:     evt.ID,
		AthleteName: "Sarah Sjöström",
		Time:        "52.16",
		Position:    1,
	})
	if err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}
	if created.Status != model.ResultStatusOfficial {
		t.Errorf("status = %q, want %q", created.Status, model.ResultStatusOfficial)
	}
	if len(published) != 1 || published[0].Type != dispatch.EventTypeResultRecorded {
		t.Fatalf("expected one ResultRecorded event, got %v", published)
	}
	if res, ok := published[0].Payload.(model.Result); !ok || res.ID != created.ID {
		t.Errorf("published payload does not carry the created result")
	}
}

func TestAddResultAcceptsPositionZero(t *testing.T) {
	resUC, evUC, _ := newTestUsecase(t)
	ctx := context.Background()
	evt := mustCreateEvent(t, evUC)

	// Position zero stands for DNS/DNF placeholders.
	created, err := resUC.AddResult(ctx, model.Scope{}, result.AddResultInput{
		EventID:     evt.ID,
		AthleteName: "Withdrawn Athlete",
		Position:    0,
	})
	if err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}
	if created.Position != 0 {
		t.Errorf("position = %d, want 0", created.Position)
	}
}

func TestAddResultRequiresEventAndAthlete(t *testing.T) {
	resUC, _, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := resUC.AddResult(ctx, model.Scope{}, result.AddResultInput{AthleteName: "x"}); err != result.ErrFieldRequired {
		t.Errorf("AddResult() error = %v, want %v", err, result.ErrFieldRequired)
	}
	if _, err := resUC.AddResult(ctx, model.Scope{}, result.AddResultInput{EventID: "e"}); err != result.ErrFieldRequired {
		t.Errorf("AddResult() error = %v, want %v", err, result.ErrFieldRequired)
	}
}

func TestAddResultUnknownEvent(t *testing.T) {
	resUC, _, _ := newTestUsecase(t)

	_, err := resUC.AddResult(context.Background(), model.Scope{}, result.AddResultInput{
		EventID:     "missing",
		AthleteName: "x",
	})
	if err != result.ErrEventNotFound {
		t.Errorf("AddResult() error = %v, want %v", err, result.ErrEventNotFound)
	}
}

func TestGetEventResultsSortedByPosition(t *testing.T) {
	resUC, evUC, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	evt := mustCreateEvent(t, evUC)

	for _, r := range []struct {
		name     string
		position int
	}{
		{"Third", 3},
		{"First", 1},
		{"Second", 2},
	} {
		if _, err := resUC.AddResult(ctx, sc, result.AddResultInput{
			EventID:     evt.ID,
			AthleteName: r.name,
			Position:    r.position,
		}); err != nil {
			t.Fatalf("AddResult() error = %v", err)
		}
	}

	results, err := resUC.GetEventResults(ctx, sc, evt.ID)
	if err != nil {
		t.Fatalf("GetEventResults() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if results[i].AthleteName != want {
			t.Errorf("results[%d] = %q, want %q", i, results[i].AthleteName, want)
		}
	}
}

func TestUpdateResultPartialFields(t *testing.T) {
	resUC, evUC, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	evt := mustCreateEvent(t, evUC)

	created, err := resUC.AddResult(ctx, sc, result.AddResultInput{
		EventID:     evt.ID,
		AthleteName: "Sarah Sjöström",
		Time:        "52.50",
		Position:    2,
	})
	if err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}

	newTime := "52.16"
	newPosition := 1
	updated, err := resUC.UpdateResult(ctx, sc, result.UpdateResultInput{
		ID:       created.ID,
		Time:     &newTime,
		Position: &newPosition,
	})
	if err != nil {
		t.Fatalf("UpdateResult() error = %v", err)
	}
	if updated.Time != "52.16" || updated.Position != 1 {
		t.Errorf("update not applied: %+v", updated)
	}
	// Untouched fields survive.
	if updated.AthleteName != "Sarah Sjöström" {
		t.Errorf("athlete name changed: %q", updated.AthleteName)
	}

	bogus := "unofficial"
	if _, err := resUC.UpdateResult(ctx, sc, result.UpdateResultInput{ID: created.ID, Status: &bogus}); err != result.ErrInvalidStatus {
		t.Errorf("UpdateResult() error = %v, want %v", err, result.ErrInvalidStatus)
	}
}

func TestDeleteResult(t *testing.T) {
	resUC, evUC, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	evt := mustCreateEvent(t, evUC)

	created, err := resUC.AddResult(ctx, sc, result.AddResultInput{
		EventID:     evt.ID,
		AthleteName: "Sarah Sjöström",
		Position:    1,
	})
	if err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}

	if err := resUC.DeleteResult(ctx, sc, created.ID); err != nil {
		t.Fatalf("DeleteResult() error = %v", err)
	}
	if err := resUC.DeleteResult(ctx, sc, created.ID); err != result.ErrResultNotFound {
		t.Errorf("DeleteResult() second call error = %v, want %v", err, result.ErrResultNotFound)
	}

	results, err := resUC.GetEventResults(ctx, sc, evt.ID)
	if err != nil {
		t.Fatalf("GetEventResults() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d after delete, want 0", len(results))
	}
}

func TestGetAthleteResults(t *testing.T) {
	resUC, evUC, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}
	evt := mustCreateEvent(t, evUC)

	if _, err := resUC.AddResult(ctx, sc, result.AddResultInput{
		EventID:     evt.ID,
		AthleteID:   "athlete-9",
		AthleteName: "Sarah Sjöström",
		Position:    1,
	}); err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}
	if _, err := resUC.AddResult(ctx, sc, result.AddResultInput{
		EventID:     evt.ID,
		AthleteID:   "athlete-10",
		AthleteName: "Someone Else",
		Position:    2,
	}); err != nil {
		t.Fatalf("AddResult() error = %v", err)
	}

	results, err := resUC.GetAthleteResults(ctx, sc, "athlete-9")
	if err != nil {
		t.Fatalf("GetAthleteResults() error = %v", err)
	}
	if len(results) != 1 || results[0].AthleteID != "athlete-9" {
		t.Errorf("unexpected athlete results: %+v", results)
	}
}
