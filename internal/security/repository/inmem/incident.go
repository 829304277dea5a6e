package inmem

import (
	"context"
	"sort"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security/repository"
)

func (r *incidentRepository) Create(ctx context.Context, opts repository.CreateIncidentOptions) (model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc := opts.Incident
	if inc.ID == "" {
		return model.Incident{}, errors.New("incident id is required")
	}
	if _, ok := r.incidents[inc.ID]; ok {
		return model.Incident{}, errors.Errorf("incident already exists: %s", inc.ID)
	}

	r.incidents[inc.ID] = inc
	return inc, nil
}

func (r *incidentRepository) Update(ctx context.Context, opts repository.UpdateIncidentOptions) (model.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inc := opts.Incident
	if _, ok := r.incidents[inc.ID]; !ok {
		return model.Incident{}, repository.ErrNotFound
	}

	r.incidents[inc.ID] = inc
	return inc, nil
}

func (r *incidentRepository) Detail(ctx context.Context, id string) (model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inc, ok := r.incidents[id]
	if !ok {
		return model.Incident{}, repository.ErrNotFound
	}
	return inc, nil
}

func (r *incidentRepository) List(ctx context.Context, opts repository.ListIncidentOptions) ([]model.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]model.Incident, 0, len(r.incidents))
	for _, inc := range r.incidents {
		if !matchIncidentFilter(inc, opts.Filter) {
			continue
		}
		incidents = append(incidents, inc)
	}

	// Newest first.
	sort.Slice(incidents, func(i, j int) bool {
		if incidents[i].ReportedAt.Equal(incidents[j].ReportedAt) {
			return incidents[i].ID < incidents[j].ID
		}
		return incidents[i].ReportedAt.After(incidents[j].ReportedAt)
	})

	return incidents, nil
}

func matchIncidentFilter(inc model.Incident, f repository.IncidentFilter) bool {
	if f.Status != "" && inc.Status != f.Status {
		return false
	}
	if f.Severity != "" && inc.Severity != f.Severity {
		return false
	}
	if f.Type != "" && inc.Type != f.Type {
		return false
	}
	if f.Venue != "" && inc.Venue != f.Venue {
		return false
	}
	return true
}
