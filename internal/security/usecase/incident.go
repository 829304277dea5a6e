package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security"
	"ciblsport-api/internal/security/repository"
)

func validSeverity(severity string) bool {
	switch severity {
	case model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityCritical:
		return true
	}
	return false
}

func validIncidentStatus(status string) bool {
	switch status {
	case model.IncidentStatusReported, model.IncidentStatusInvestigating,
		model.IncidentStatusResolved, model.IncidentStatusClosed:
		return true
	}
	return false
}

func (uc *usecase) AddIncident(ctx context.Context, sc model.Scope, ip security.AddIncidentInput) (model.Incident, error) {
	if ip.Title == "" || ip.Location == "" {
		return model.Incident{}, security.ErrFieldRequired
	}

	severity := ip.Severity
	if severity == "" {
		severity = model.SeverityLow
	}
	if !validSeverity(severity) {
		return model.Incident{}, security.ErrInvalidSeverity
	}

	now := time.Now()
	inc := model.Incident{
		ID:               uuid.NewString(),
		Title:            ip.Title,
		Description:      ip.Description,
		Type:             ip.Type,
		Severity:         severity,
		Status:           model.IncidentStatusReported,
		Location:         ip.Location,
		Venue:            ip.Venue,
		ReportedBy:       sc.UserID,
		ReportedAt:       now,
		AffectedAudience: ip.AffectedAudience,
		AssignedTo:       ip.AssignedTo,
		Updates:          []model.IncidentUpdate{},
		UpdatedAt:        now,
	}

	created, err := uc.incidentRepo.Create(ctx, repository.CreateIncidentOptions{Incident: inc})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.AddIncident: %v", err)
		return model.Incident{}, err
	}

	// High-severity incidents raise a venue alert immediately. The alert is
	// not re-announced through the dispatcher: the incident event below
	// already produces the single urgent notification.
	if created.IsHighSeverity() {
		if _, err := uc.createAutoAlert(ctx, created); err != nil {
			uc.l.Errorf(ctx, "internal.security.usecase.AddIncident.createAutoAlert: %v", err)
		}
	}

	uc.dispatcher.Publish(ctx, dispatch.Event{
		Type:    dispatch.EventTypeIncidentReported,
		Payload: created,
	})

	return created, nil
}

func (uc *usecase) createAutoAlert(ctx context.Context, inc model.Incident) (model.Alert, error) {
	alertType := model.AlertTypeWarning
	if inc.Severity == model.SeverityCritical {
		alertType = model.AlertTypeEmergency
	}

	expiresAt := time.Now().Add(autoAlertTTL)
	alert := model.Alert{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("Incident: %s", inc.Title),
		Message:   fmt.Sprintf("%s at %s", inc.Title, inc.Location),
		Type:      alertType,
		Venue:     inc.Venue,
		IsActive:  true,
		CreatedAt: time.Now(),
		ExpiresAt: &expiresAt,
	}

	return uc.alertRepo.Create(ctx, repository.CreateAlertOptions{Alert: alert})
}

func (uc *usecase) UpdateIncident(ctx context.Context, sc model.Scope, ip security.UpdateIncidentInput) (model.Incident, error) {
	inc, err := uc.incidentRepo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Incident{}, security.ErrIncidentNotFound
		}
		uc.l.Errorf(ctx, "internal.security.usecase.UpdateIncident.Detail: %v", err)
		return model.Incident{}, err
	}

	if ip.Status != nil {
		if !validIncidentStatus(*ip.Status) {
			return model.Incident{}, security.ErrInvalidStatus
		}
		// ResolvedAt is stamped once, on the first transition into
		// resolved; later status churn never rewrites it.
		if *ip.Status == model.IncidentStatusResolved && inc.ResolvedAt == nil {
			now := time.Now()
			inc.ResolvedAt = &now
		}
		inc.Status = *ip.Status
	}
	if ip.Severity != nil {
		if !validSeverity(*ip.Severity) {
			return model.Incident{}, security.ErrInvalidSeverity
		}
		inc.Severity = *ip.Severity
	}
	if ip.AssignedTo != nil {
		inc.AssignedTo = *ip.AssignedTo
	}
	inc.UpdatedAt = time.Now()

	updated, err := uc.incidentRepo.Update(ctx, repository.UpdateIncidentOptions{Incident: inc})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.UpdateIncident: %v", err)
		return model.Incident{}, err
	}

	return updated, nil
}

func (uc *usecase) AddIncidentUpdate(ctx context.Context, sc model.Scope, ip security.AddIncidentUpdateInput) (model.Incident, error) {
	if ip.Message == "" {
		return model.Incident{}, security.ErrFieldRequired
	}

	inc, err := uc.incidentRepo.Detail(ctx, ip.IncidentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Incident{}, security.ErrIncidentNotFound
		}
		uc.l.Errorf(ctx, "internal.security.usecase.AddIncidentUpdate.Detail: %v", err)
		return model.Incident{}, err
	}

	author := ip.Author
	if author == "" {
		author = sc.UserID
	}

	inc.Updates = append(inc.Updates, model.IncidentUpdate{
		ID:        uuid.NewString(),
		Message:   ip.Message,
		Author:    author,
		Timestamp: time.Now(),
	})
	inc.UpdatedAt = time.Now()

	updated, err := uc.incidentRepo.Update(ctx, repository.UpdateIncidentOptions{Incident: inc})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.AddIncidentUpdate: %v", err)
		return model.Incident{}, err
	}

	return updated, nil
}

func (uc *usecase) ListIncidents(ctx context.Context, sc model.Scope, ip security.ListIncidentsInput) ([]model.Incident, error) {
	incidents, err := uc.incidentRepo.List(ctx, repository.ListIncidentOptions{
		Filter: repository.IncidentFilter{
			Status:   ip.Filter.Status,
			Severity: ip.Filter.Severity,
			Type:     ip.Filter.Type,
			Venue:    ip.Filter.Venue,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.ListIncidents: %v", err)
		return nil, err
	}
	return incidents, nil
}

func (uc *usecase) DetailIncident(ctx context.Context, sc model.Scope, id string) (model.Incident, error) {
	inc, err := uc.incidentRepo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Incident{}, security.ErrIncidentNotFound
		}
		uc.l.Errorf(ctx, "internal.security.usecase.DetailIncident: %v", err)
		return model.Incident{}, err
	}
	return inc, nil
}

func (uc *usecase) GetIncidentsByVenue(ctx context.Context, sc model.Scope, venue string) ([]model.Incident, error) {
	incidents, err := uc.incidentRepo.List(ctx, repository.ListIncidentOptions{
		Filter: repository.IncidentFilter{Venue: venue},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.security.usecase.GetIncidentsByVenue: %v", err)
		return nil, err
	}
	return incidents, nil
}
