package inmem

import (
	"context"
	"sort"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/venue/repository"
)

func (r *inmemRepository) List(ctx context.Context) ([]model.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	venues := make([]model.Venue, 0, len(r.venues))
	for _, v := range r.venues {
		venues = append(venues, v)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })
	return venues, nil
}

func (r *inmemRepository) Detail(ctx context.Context, id string) (model.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.venues[id]
	if !ok {
		return model.Venue{}, repository.ErrNotFound
	}
	return v, nil
}

func (r *inmemRepository) Create(ctx context.Context, v model.Venue) (model.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return model.Venue{}, errors.New("venue id is required")
	}
	if _, ok := r.venues[v.ID]; ok {
		return model.Venue{}, errors.Errorf("venue already exists: %s", v.ID)
	}

	r.venues[v.ID] = v
	return v, nil
}
