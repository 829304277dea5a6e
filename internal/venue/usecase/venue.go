package usecase

import (
	"context"
	"time"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/venue"
	"ciblsport-api/internal/venue/repository"
)

// mapURLExpiry is how long a presigned venue map link stays valid.
const mapURLExpiry = 15 * time.Minute

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Venue, error) {
	venues, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.venue.usecase.List: %v", err)
		return nil, err
	}
	return venues, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Venue, error) {
	v, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Venue{}, venue.ErrVenueNotFound
		}
		uc.l.Errorf(ctx, "internal.venue.usecase.Detail: %v", err)
		return model.Venue{}, err
	}
	return v, nil
}

func (uc *usecase) MapURL(ctx context.Context, sc model.Scope, id string) (venue.MapURLOutput, error) {
	v, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return venue.MapURLOutput{}, venue.ErrVenueNotFound
		}
		uc.l.Errorf(ctx, "internal.venue.usecase.MapURL.Detail: %v", err)
		return venue.MapURLOutput{}, err
	}

	if uc.storage == nil || v.MapObjectKey == "" {
		return venue.MapURLOutput{}, venue.ErrMapNotAvailable
	}

	presigned, err := uc.storage.PresignedDownloadURL(ctx, uc.bucket, v.MapObjectKey, mapURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "internal.venue.usecase.MapURL.PresignedDownloadURL: %v", err)
		return venue.MapURLOutput{}, err
	}

	return venue.MapURLOutput{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
	}, nil
}
