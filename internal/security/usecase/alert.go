package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security"
	"ciblsport-api/internal/security/repository"
)

func validAlertType(alertType string) bool {
	switch alertType {
	case model.AlertTypeInfo, model.AlertTypeWarning, model.AlertTypeEmergency:
		return true
	}
	return false
}

func (uc *usecase) CreateAlert(ctx context.Context, sc model.Scope, ip security.CreateAlertInput) (model.Alert, error) {
	if ip.Title == "" || ip.Message == "" {
		return model.Alert{}, security.ErrFieldRequired
	}

	alertType := ip.Type
	if alertType == "" {
		alertType = model.AlertTypeInfo
	}
	if !validAlertType(alertType) {
		return model.Alert{}, security.ErrInvalidAlertType
	}

	alert := model.Alert{
		ID:        uuid.NewString(),
		Title:     ip.Title,
		Message:   ip.Message,
		Type:      alertType,
		Venue:     ip.Venue,
		IsActive:  true,
		CreatedAt: time.Now(),
		ExpiresAt: ip.ExpiresAt,
	}

	created, err := uc.alertRepo.Create(ctx, repository.CreateAlertOptions{Alert: alert})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.CreateAlert: %v", err)
		return model.Alert{}, err
	}

	uc.dispatcher.Publish(ctx, dispatch.Event{
		Type:    dispatch.EventTypeAlertCreated,
		Payload: created,
	})

	return created, nil
}

func (uc *usecase) DismissAlert(ctx context.Context, sc model.Scope, id string) error {
	alert, err := uc.alertRepo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return security.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.security.usecase.DismissAlert.Detail: %v", err)
		return err
	}

	// Dismissal is one-way, dismissing twice is a no-op.
	if !alert.IsActive {
		return nil
	}

	alert.IsActive = false
	if _, err := uc.alertRepo.Update(ctx, repository.UpdateAlertOptions{Alert: alert}); err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.DismissAlert: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) GetActiveAlerts(ctx context.Context, sc model.Scope) ([]model.Alert, error) {
	alerts, err := uc.alertRepo.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.GetActiveAlerts: %v", err)
		return nil, err
	}

	// Filter out expired alerts that the sweeper has not visited yet.
	now := time.Now()
	active := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Expired(now) {
			continue
		}
		active = append(active, a)
	}
	return active, nil
}

func (uc *usecase) SweepExpiredAlerts(ctx context.Context) (int, error) {
	alerts, err := uc.alertRepo.ListActive(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.SweepExpiredAlerts: %v", err)
		return 0, err
	}

	now := time.Now()
	swept := 0
	for _, a := range alerts {
		if !a.Expired(now) {
			continue
		}
		a.IsActive = false
		if _, err := uc.alertRepo.Update(ctx, repository.UpdateAlertOptions{Alert: a}); err != nil {
			uc.l.Errorf(ctx, "internal.security.usecase.SweepExpiredAlerts.Update: %v", err)
			continue
		}
		swept++
	}

	if swept > 0 {
		uc.l.Infof(ctx, "internal.security.usecase.SweepExpiredAlerts: deactivated %d expired alerts", swept)
	}
	return swept, nil
}

// RunSweeper periodically deactivates expired alerts until ctx is done.
func (uc *usecase) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(uc.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.SweepExpiredAlerts(ctx); err != nil {
				uc.l.Errorf(ctx, "internal.security.usecase.RunSweeper: %v", err)
			}
		}
	}
}
