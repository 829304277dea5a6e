package inmem

import (
	"context"
	"path/filepath"
	"testing"

	"ciblsport-api/internal/model"
	pkgLog "ciblsport-api/pkg/log"
)

func TestPreferencesDefaultWithoutFile(t *testing.T) {
	r := NewPreferenceRepository(pkgLog.NewNoop(), "")

	prefs, err := r.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if prefs != model.DefaultPreferences() {
		t.Errorf("Get() = %+v, want defaults", prefs)
	}
}

func TestPreferencesSurviveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	l := pkgLog.NewNoop()
	ctx := context.Background()

	r := NewPreferenceRepository(l, path)
	prefs := model.DefaultPreferences()
	prefs.Results = false
	prefs.System = true
	if err := r.Save(ctx, prefs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A fresh repository pointed at the same file picks the saved set up.
	reloaded := NewPreferenceRepository(l, path)
	got, err := reloaded.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != prefs {
		t.Errorf("reloaded preferences = %+v, want %+v", got, prefs)
	}
}

func TestPreferencesSaveWithoutPathKeepsInMemory(t *testing.T) {
	r := NewPreferenceRepository(pkgLog.NewNoop(), "")
	ctx := context.Background()

	prefs := model.DefaultPreferences()
	prefs.Events = false
	if err := r.Save(ctx, prefs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := r.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Events {
		t.Error("saved preference not visible in memory")
	}
}
