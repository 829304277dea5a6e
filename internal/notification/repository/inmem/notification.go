package inmem

import (
	"context"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification/repository"
)

func (r *inmemRepository) Insert(ctx context.Context, n model.Notification) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		return model.Notification{}, errors.New("notification id is required")
	}

	// Prepend, then trim the tail so the feed never exceeds the cap.
	r.feed = append([]model.Notification{n}, r.feed...)
	if len(r.feed) > model.MaxNotifications {
		r.feed = r.feed[:model.MaxNotifications]
	}

	return n, nil
}

func (r *inmemRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Notification, 0, len(r.feed))
	for _, n := range r.feed {
		if opts.Filter.Type != "" && n.Type != opts.Filter.Type {
			continue
		}
		if opts.Filter.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *inmemRepository) MarkAsRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.feed {
		if r.feed[i].ID == id {
			r.feed[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *inmemRepository) MarkAllAsRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.feed {
		r.feed[i].Read = true
	}
	return nil
}

func (r *inmemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.feed {
		if r.feed[i].ID == id {
			r.feed = append(r.feed[:i], r.feed[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *inmemRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feed = r.feed[:0]
	return nil
}

func (r *inmemRepository) UnreadCount(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.feed {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
