package inmem

import (
	"context"
	"sort"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/result/repository"
)

func sortByPosition(results []model.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Position < results[j].Position
	})
}

func (r *inmemRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := opts.Result
	if res.ID == "" {
		return model.Result{}, errors.New("result id is required")
	}
	if res.EventID == "" {
		return model.Result{}, errors.New("result event id is required")
	}
	if _, ok := r.byID[res.ID]; ok {
		return model.Result{}, errors.Errorf("result already exists: %s", res.ID)
	}

	results := append(r.byEvent[res.EventID], res)
	sortByPosition(results)
	r.byEvent[res.EventID] = results
	r.byID[res.ID] = res.EventID

	return res, nil
}

func (r *inmemRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := opts.Result
	eventID, ok := r.byID[res.ID]
	if !ok {
		return model.Result{}, repository.ErrNotFound
	}

	results := r.byEvent[eventID]
	for i := range results {
		if results[i].ID == res.ID {
			results[i] = res
			break
		}
	}
	sortByPosition(results)
	r.byEvent[eventID] = results

	return res, nil
}

func (r *inmemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	eventID, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}

	results := r.byEvent[eventID]
	for i := range results {
		if results[i].ID == id {
			r.byEvent[eventID] = append(results[:i], results[i+1:]...)
			break
		}
	}
	delete(r.byID, id)

	return nil
}

func (r *inmemRepository) Detail(ctx context.Context, id string) (model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	eventID, ok := r.byID[id]
	if !ok {
		return model.Result{}, repository.ErrNotFound
	}
	for _, res := range r.byEvent[eventID] {
		if res.ID == id {
			return res, nil
		}
	}
	return model.Result{}, repository.ErrNotFound
}

func (r *inmemRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.byEvent[eventID]
	out := make([]model.Result, len(results))
	copy(out, results)
	return out, nil
}

func (r *inmemRepository) ListByAthlete(ctx context.Context, athleteID string) ([]model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Result
	for _, results := range r.byEvent {
		for _, res := range results {
			if res.AthleteID == athleteID {
				out = append(out, res)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
