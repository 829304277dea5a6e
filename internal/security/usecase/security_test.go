package usecase

import (
	"context"
	"testing"
	"time"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security"
	"ciblsport-api/internal/security/repository/inmem"
	pkgLog "ciblsport-api/pkg/log"
)

func newTestUsecase(t *testing.T) (security.UseCase, *dispatch.Dispatcher) {
	t.Helper()
	l := pkgLog.NewNoop()
	d := dispatch.New(nil)
	uc := New(l, inmem.NewIncidentRepository(l), inmem.NewAlertRepository(l), d, Config{})
	return uc, d
}

func TestAddIncidentDefaultsToLowAndReported(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "reporter-1"}

	inc, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{
		Title:    "Lost child",
		Location: "Concourse A",
	})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}
	if inc.Severity != model.SeverityLow {
		t.Errorf("severity = %q, want %q", inc.Severity, model.SeverityLow)
	}
	if inc.Status != model.IncidentStatusReported {
		t.Errorf("status = %q, want %q", inc.Status, model.IncidentStatusReported)
	}
	if inc.ReportedBy != "reporter-1" {
		t.Errorf("reportedBy = %q, want reporter-1", inc.ReportedBy)
	}

	// Low severity must not raise an alert.
	alerts, err := uc.GetActiveAlerts(ctx, sc)
	if err != nil {
		t.Fatalf("GetActiveAlerts() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("active alerts = %d after low-severity incident, want 0", len(alerts))
	}
}

func TestAddIncidentRequiresTitleAndLocation(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.AddIncident(context.Background(), model.Scope{}, security.AddIncidentInput{Title: "x"})
	if err != security.ErrFieldRequired {
		t.Errorf("AddIncident() error = %v, want %v", err, security.ErrFieldRequired)
	}
}

func TestCriticalIncidentRaisesEmergencyAlert(t *testing.T) {
	uc, d := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	var published []dispatch.Event
	d.Subscribe(dispatch.HandlerFunc(func(ctx context.Context, evt dispatch.Event) {
		published = append(published, evt)
	}))

	before := time.Now()
	_, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{
		Title:    "Fire in stands",
		Location: "Block C",
		Severity: model.SeverityCritical,
		Venue:    "Paris La Défense Arena",
	})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}

	alerts, err := uc.GetActiveAlerts(ctx, sc)
	if err != nil {
		t.Fatalf("GetActiveAlerts() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("active alerts = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Type != model.AlertTypeEmergency {
		t.Errorf("alert type = %q, want %q", a.Type, model.AlertTypeEmergency)
	}
	if a.Title != "Incident: Fire in stands" {
		t.Errorf("alert title = %q", a.Title)
	}
	if a.Message != "Fire in stands at Block C" {
		t.Errorf("alert message = %q", a.Message)
	}
	if a.ExpiresAt == nil {
		t.Fatal("auto alert has no expiry")
	}
	ttl := a.ExpiresAt.Sub(before)
	if ttl < autoAlertTTL-time.Minute || ttl > autoAlertTTL+time.Minute {
		t.Errorf("auto alert TTL = %v, want ~%v", ttl, autoAlertTTL)
	}

	// Only the incident event goes through the dispatcher; the auto alert
	// must not produce a second one.
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if published[0].Type != dispatch.EventTypeIncidentReported {
		t.Errorf("published event type = %q, want %q", published[0].Type, dispatch.EventTypeIncidentReported)
	}
}

func TestHighIncidentRaisesWarningAlert(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	_, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{
		Title:    "Suspicious package",
		Location: "Gate D",
		Severity: model.SeverityHigh,
	})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}

	alerts, _ := uc.GetActiveAlerts(ctx, sc)
	if len(alerts) != 1 {
		t.Fatalf("active alerts = %d, want 1", len(alerts))
	}
	if alerts[0].Type != model.AlertTypeWarning {
		t.Errorf("alert type = %q, want %q", alerts[0].Type, model.AlertTypeWarning)
	}
}

func TestUpdateIncidentStampsResolvedAtOnce(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	inc, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{Title: "Spill", Location: "Pool deck"})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}

	resolved := model.IncidentStatusResolved
	updated, err := uc.UpdateIncident(ctx, sc, security.UpdateIncidentInput{ID: inc.ID, Status: &resolved})
	if err != nil {
		t.Fatalf("UpdateIncident() error = %v", err)
	}
	if updated.ResolvedAt == nil {
		t.Fatal("ResolvedAt not stamped on first resolve")
	}
	first := *updated.ResolvedAt

	// Reopen, then resolve again: the original stamp must survive.
	investigating := model.IncidentStatusInvestigating
	if _, err := uc.UpdateIncident(ctx, sc, security.UpdateIncidentInput{ID: inc.ID, Status: &investigating}); err != nil {
		t.Fatalf("UpdateIncident() error = %v", err)
	}
	updated, err = uc.UpdateIncident(ctx, sc, security.UpdateIncidentInput{ID: inc.ID, Status: &resolved})
	if err != nil {
		t.Fatalf("UpdateIncident() error = %v", err)
	}
	if updated.ResolvedAt == nil || !updated.ResolvedAt.Equal(first) {
		t.Errorf("ResolvedAt rewritten on second resolve: %v != %v", updated.ResolvedAt, first)
	}
}

func TestUpdateIncidentRejectsUnknownStatus(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	inc, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{Title: "Spill", Location: "Pool deck"})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}

	bogus := "escalated"
	if _, err := uc.UpdateIncident(ctx, sc, security.UpdateIncidentInput{ID: inc.ID, Status: &bogus}); err != security.ErrInvalidStatus {
		t.Errorf("UpdateIncident() error = %v, want %v", err, security.ErrInvalidStatus)
	}
}

func TestAddIncidentUpdateAppends(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "officer-7"}

	inc, err := uc.AddIncident(ctx, sc, security.AddIncidentInput{Title: "Spill", Location: "Pool deck"})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}

	updated, err := uc.AddIncidentUpdate(ctx, sc, security.AddIncidentUpdateInput{
		IncidentID: inc.ID,
		Message:    "Cleanup crew dispatched",
	})
	if err != nil {
		t.Fatalf("AddIncidentUpdate() error = %v", err)
	}
	if len(updated.Updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(updated.Updates))
	}
	if updated.Updates[0].Author != "officer-7" {
		t.Errorf("update author = %q, want officer-7", updated.Updates[0].Author)
	}
}

func TestDismissAlertIsIdempotent(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	created, err := uc.CreateAlert(ctx, sc, security.CreateAlertInput{
		Title:   "Weather warning",
		Message: "Thunderstorm expected",
		Type:    model.AlertTypeWarning,
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}

	if err := uc.DismissAlert(ctx, sc, created.ID); err != nil {
		t.Fatalf("DismissAlert() error = %v", err)
	}
	if err := uc.DismissAlert(ctx, sc, created.ID); err != nil {
		t.Fatalf("DismissAlert() second call error = %v", err)
	}

	alerts, err := uc.GetActiveAlerts(ctx, sc)
	if err != nil {
		t.Fatalf("GetActiveAlerts() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("active alerts = %d after dismissal, want 0", len(alerts))
	}

	if err := uc.DismissAlert(ctx, sc, "missing"); err != security.ErrAlertNotFound {
		t.Errorf("DismissAlert(missing) error = %v, want %v", err, security.ErrAlertNotFound)
	}
}

func TestCreateAlertDefaultsToInfoAndPublishes(t *testing.T) {
	uc, d := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	var published []dispatch.Event
	d.Subscribe(dispatch.HandlerFunc(func(ctx context.Context, evt dispatch.Event) {
		published = append(published, evt)
	}))

	created, err := uc.CreateAlert(ctx, sc, security.CreateAlertInput{
		Title:   "Shuttle delay",
		Message: "Shuttles running 10 minutes late",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}
	if created.Type != model.AlertTypeInfo {
		t.Errorf("alert type = %q, want %q", created.Type, model.AlertTypeInfo)
	}
	if len(published) != 1 || published[0].Type != dispatch.EventTypeAlertCreated {
		t.Errorf("expected one AlertCreated event, got %v", published)
	}
}

func TestSweepExpiredAlerts(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()
	sc := model.Scope{}

	past := time.Now().Add(-time.Minute)
	if _, err := uc.CreateAlert(ctx, sc, security.CreateAlertInput{
		Title:     "Expired notice",
		Message:   "should be swept",
		ExpiresAt: &past,
	}); err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}
	if _, err := uc.CreateAlert(ctx, sc, security.CreateAlertInput{
		Title:   "Open-ended notice",
		Message: "stays active",
	}); err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}

	// Expired alerts are already hidden from GetActiveAlerts before the
	// sweeper runs.
	alerts, err := uc.GetActiveAlerts(ctx, sc)
	if err != nil {
		t.Fatalf("GetActiveAlerts() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("active alerts before sweep = %d, want 1", len(alerts))
	}

	swept, err := uc.SweepExpiredAlerts(ctx)
	if err != nil {
		t.Fatalf("SweepExpiredAlerts() error = %v", err)
	}
	if swept != 1 {
		t.Errorf("swept = %d, want 1", swept)
	}

	// A second sweep finds nothing.
	swept, err = uc.SweepExpiredAlerts(ctx)
	if err != nil {
		t.Fatalf("SweepExpiredAlerts() error = %v", err)
	}
	if swept != 0 {
		t.Errorf("second sweep = %d, want 0", swept)
	}
}

func TestIncidentFeedIntegration(t *testing.T) {
	// Wire the dispatcher the way main does and check a critical incident
	// produces exactly one urgent feed entry.
	l := pkgLog.NewNoop()
	d := dispatch.New(nil)
	uc := New(l, inmem.NewIncidentRepository(l), inmem.NewAlertRepository(l), d, Config{})

	var received []dispatch.Event
	d.Subscribe(dispatch.HandlerFunc(func(ctx context.Context, evt dispatch.Event) {
		received = append(received, evt)
	}))

	_, err := uc.AddIncident(context.Background(), model.Scope{}, security.AddIncidentInput{
		Title:    "Power outage",
		Location: "Timing room",
		Severity: model.SeverityCritical,
	})
	if err != nil {
		t.Fatalf("AddIncident() error = %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("dispatched %d events for critical incident, want 1", len(received))
	}
	if _, ok := received[0].Payload.(model.Incident); !ok {
		t.Errorf("payload is %T, want model.Incident", received[0].Payload)
	}
}
