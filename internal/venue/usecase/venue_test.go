package usecase

import (
	"context"
	"testing"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/venue"
	"ciblsport-api/internal/venue/repository"
	"ciblsport-api/internal/venue/repository/inmem"
	pkgLog "ciblsport-api/pkg/log"
)

func newTestUsecase(t *testing.T) (venue.UseCase, repository.Repository) {
	t.Helper()
	l := pkgLog.NewNoop()
	repo := inmem.New(l)
	return New(l, repo, nil, ""), repo
}

func seedVenue(t *testing.T, repo repository.Repository, v model.Venue) model.Venue {
	t.Helper()
	created, err := repo.Create(context.Background(), v)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return created
}

func TestListSortedByName(t *testing.T) {
	uc, repo := newTestUsecase(t)
	ctx := context.Background()

	seedVenue(t, repo, model.Venue{ID: "v2", Name: "Paris La Défense Arena"})
	seedVenue(t, repo, model.Venue{ID: "v1", Name: "Centre Aquatique Olympique"})

	venues, err := uc.List(ctx, model.Scope{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("venues = %d, want 2", len(venues))
	}
	if venues[0].Name != "Centre Aquatique Olympique" {
		t.Errorf("venues not sorted by name: %q first", venues[0].Name)
	}
}

func TestDetailUnknownVenue(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.Detail(context.Background(), model.Scope{}, "missing"); err != venue.ErrVenueNotFound {
		t.Errorf("Detail() error = %v, want %v", err, venue.ErrVenueNotFound)
	}
}

func TestMapURLWithoutStorage(t *testing.T) {
	uc, repo := newTestUsecase(t)
	ctx := context.Background()

	v := seedVenue(t, repo, model.Venue{ID: "v1", Name: "Arena", MapObjectKey: "maps/arena.png"})

	// No storage backend configured: the map cannot be served.
	if _, err := uc.MapURL(ctx, model.Scope{}, v.ID); err != venue.ErrMapNotAvailable {
		t.Errorf("MapURL() error = %v, want %v", err, venue.ErrMapNotAvailable)
	}
}

func TestMapURLWithoutObjectKey(t *testing.T) {
	uc, repo := newTestUsecase(t)
	ctx := context.Background()

	v := seedVenue(t, repo, model.Venue{ID: "v1", Name: "Arena"})

	if _, err := uc.MapURL(ctx, model.Scope{}, v.ID); err != venue.ErrMapNotAvailable {
		t.Errorf("MapURL() error = %v, want %v", err, venue.ErrMapNotAvailable)
	}
}

func TestMapURLUnknownVenue(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.MapURL(context.Background(), model.Scope{}, "missing"); err != venue.ErrVenueNotFound {
		t.Errorf("MapURL() error = %v, want %v", err, venue.ErrVenueNotFound)
	}
}
