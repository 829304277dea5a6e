package inmem

import (
	"context"
	"sort"
	"strings"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/auth/repository"
	"ciblsport-api/internal/model"
)

func (r *inmemRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (r *inmemRepository) Detail(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *inmemRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.User.ID == "" {
		return model.User{}, errors.New("user id is required")
	}
	if _, ok := r.users[opts.User.ID]; ok {
		return model.User{}, errors.Errorf("user already exists: %s", opts.User.ID)
	}

	r.users[opts.User.ID] = opts.User
	return opts.User, nil
}

func (r *inmemRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}
