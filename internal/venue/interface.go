package venue

import (
	"context"

	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Venue, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Venue, error)

	// MapURL returns a short-lived download URL for the venue map image.
	MapURL(ctx context.Context, sc model.Scope, id string) (MapURLOutput, error)
}
