package inmem

import (
	"context"
	"sort"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/event/repository"
	"ciblsport-api/internal/model"
)

func (r *inmemRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.Event.ID == "" {
		return model.Event{}, errors.New("event id is required")
	}
	if _, ok := r.events[opts.Event.ID]; ok {
		return model.Event{}, errors.Errorf("event already exists: %s", opts.Event.ID)
	}

	r.events[opts.Event.ID] = opts.Event
	return opts.Event, nil
}

func (r *inmemRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.Event, 0, len(r.events))
	for _, e := range r.events {
		if !matchFilter(e, opts.Filter) {
			continue
		}
		events = append(events, e)
	}

	// Chronological by start time, id as tiebreaker for stable output.
	sort.Slice(events, func(i, j int) bool {
		if events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})

	return events, nil
}

func matchFilter(e model.Event, f repository.Filter) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Venue != "" && e.Venue != f.Venue {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Sport != "" && e.Sport != f.Sport {
		return false
	}
	return true
}

func (r *inmemRepository) Detail(ctx context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return model.Event{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *inmemRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[opts.Event.ID]; !ok {
		return model.Event{}, repository.ErrNotFound
	}

	r.events[opts.Event.ID] = opts.Event
	return opts.Event, nil
}
