package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/event"
	"ciblsport-api/internal/event/repository"
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/paginator"
)

func validStatus(status string) bool {
	switch status {
	case model.EventStatusScheduled, model.EventStatusInProgress,
		model.EventStatusCompleted, model.EventStatusCancelled:
		return true
	}
	return false
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip event.CreateInput) (model.Event, error) {
	if ip.Name == "" || ip.Venue == "" {
		return model.Event{}, event.ErrFieldRequired
	}

	status := ip.Status
	if status == "" {
		status = model.EventStatusScheduled
	}
	if !validStatus(status) {
		return model.Event{}, event.ErrInvalidStatus
	}

	now := time.Now()
	evt := model.Event{
		ID:              uuid.NewString(),
		Name:            ip.Name,
		Type:            ip.Type,
		Sport:           ip.Sport,
		Discipline:      ip.Discipline,
		Venue:           ip.Venue,
		StartTime:       ip.StartTime,
		EndTime:         ip.EndTime,
		Status:          status,
		MaxParticipants: ip.MaxParticipants,
		Description:     ip.Description,
		CreatedBy:       sc.UserID,
		Athletes:        ip.Athletes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Event: evt})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.Create: %v", err)
		return model.Event{}, err
	}

	return created, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip event.ListInput) (event.ListOutput, error) {
	events, err := uc.repo.List(ctx, repository.ListOptions{
		Filter: repository.Filter{
			Status: ip.Filter.Status,
			Venue:  ip.Filter.Venue,
			Type:   ip.Filter.Type,
			Sport:  ip.Filter.Sport,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.List: %v", err)
		return event.ListOutput{}, err
	}

	page, pag := paginator.PaginateSlice(events, ip.PaginateQuery)
	return event.ListOutput{Events: page, Paginator: pag}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Event, error) {
	evt, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Event{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "internal.event.usecase.Detail: %v", err)
		return model.Event{}, err
	}
	return evt, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip event.UpdateStatusInput) (model.Event, error) {
	if !validStatus(ip.Status) {
		return model.Event{}, event.ErrInvalidStatus
	}

	evt, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Event{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "internal.event.usecase.UpdateStatus.Detail: %v", err)
		return model.Event{}, err
	}

	wasCompleted := evt.Status == model.EventStatusCompleted
	evt.Status = ip.Status
	evt.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Event: evt})
	if err != nil {
		uc.l.Errorf(ctx, "internal.event.usecase.UpdateStatus.Update: %v", err)
		return model.Event{}, err
	}

	// Fan out only on the first transition into completed.
	if updated.Status == model.EventStatusCompleted && !wasCompleted {
		uc.dispatcher.Publish(ctx, dispatch.Event{
			Type:    dispatch.EventTypeEventCompleted,
			Payload: updated,
		})
	}

	return updated, nil
}
