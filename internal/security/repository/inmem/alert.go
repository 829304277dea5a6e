package inmem

import (
	"context"
	"sort"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security/repository"
)

func (r *alertRepository) Create(ctx context.Context, opts repository.CreateAlertOptions) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert := opts.Alert
	if alert.ID == "" {
		return model.Alert{}, errors.New("alert id is required")
	}
	if _, ok := r.alerts[alert.ID]; ok {
		return model.Alert{}, errors.Errorf("alert already exists: %s", alert.ID)
	}

	r.alerts[alert.ID] = alert
	return alert, nil
}

func (r *alertRepository) Update(ctx context.Context, opts repository.UpdateAlertOptions) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert := opts.Alert
	if _, ok := r.alerts[alert.ID]; !ok {
		return model.Alert{}, repository.ErrNotFound
	}

	r.alerts[alert.ID] = alert
	return alert, nil
}

func (r *alertRepository) Detail(ctx context.Context, id string) (model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alert, ok := r.alerts[id]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	return alert, nil
}

func (r *alertRepository) ListActive(ctx context.Context) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]model.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		if a.IsActive {
			alerts = append(alerts, a)
		}
	}
	sortAlerts(alerts)
	return alerts, nil
}

func (r *alertRepository) List(ctx context.Context) ([]model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]model.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		alerts = append(alerts, a)
	}
	sortAlerts(alerts)
	return alerts, nil
}

// sortAlerts orders newest first.
func sortAlerts(alerts []model.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].CreatedAt.Equal(alerts[j].CreatedAt) {
			return alerts[i].ID < alerts[j].ID
		}
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}
