package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/internal/dispatch"
	eventRepo "ciblsport-api/internal/event/repository"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/result"
	"ciblsport-api/internal/result/repository"
)

func validStatus(status string) bool {
	switch status {
	case model.ResultStatusOfficial, model.ResultStatusProvisional, model.ResultStatusDisqualified:
		return true
	}
	return false
}

func (uc *usecase) AddResult(ctx context.Context, sc model.Scope, ip result.AddResultInput) (model.Result, error) {
	if ip.EventID == "" || ip.AthleteName == "" {
		return model.Result{}, result.ErrFieldRequired
	}

	status := ip.Status
	if status == "" {
		status = model.ResultStatusOfficial
	}
	if !validStatus(status) {
		return model.Result{}, result.ErrInvalidStatus
	}

	if _, err := uc.eventRepo.Detail(ctx, ip.EventID); err != nil {
		if err == eventRepo.ErrNotFound {
			return model.Result{}, result.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "internal.result.usecase.AddResult.eventRepo.Detail: %v", err)
		return model.Result{}, err
	}

	res := model.Result{
		ID:          uuid.NewString(),
		EventID:     ip.EventID,
		AthleteID:   ip.AthleteID,
		AthleteName: ip.AthleteName,
		Country:     ip.Country,
		Time:        ip.Time,
		Position:    ip.Position,
		Lane:        ip.Lane,
		Splits:      ip.Splits,
		RecordType:  ip.RecordType,
		Status:      status,
		Timestamp:   time.Now(),
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Result: res})
	if err != nil {
		uc.l.Errorf(ctx, "internal.result.usecase.AddResult: %v", err)
		return model.Result{}, err
	}

	uc.dispatcher.Publish(ctx, dispatch.Event{
		Type:    dispatch.EventTypeResultRecorded,
		Payload: created,
	})

	return created, nil
}

func (uc *usecase) UpdateResult(ctx context.Context, sc model.Scope, ip result.UpdateResultInput) (model.Result, error) {
	res, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Result{}, result.ErrResultNotFound
		}
		uc.l.Errorf(ctx, "internal.result.usecase.UpdateResult.Detail: %v", err)
		return model.Result{}, err
	}

	if ip.Time != nil {
		res.Time = *ip.Time
	}
	if ip.Position != nil {
		res.Position = *ip.Position
	}
	if ip.Lane != nil {
		res.Lane = *ip.Lane
	}
	if ip.Splits != nil {
		res.Splits = ip.Splits
	}
	if ip.RecordType != nil {
		res.RecordType = *ip.RecordType
	}
	if ip.Status != nil {
		if !validStatus(*ip.Status) {
			return model.Result{}, result.ErrInvalidStatus
		}
		res.Status = *ip.Status
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Result: res})
	if err != nil {
		uc.l.Errorf(ctx, "internal.result.usecase.UpdateResult: %v", err)
		return model.Result{}, err
	}

	return updated, nil
}

func (uc *usecase) DeleteResult(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return result.ErrResultNotFound
		}
		uc.l.Errorf(ctx, "internal.result.usecase.DeleteResult: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) GetEventResults(ctx context.Context, sc model.Scope, eventID string) ([]model.Result, error) {
	results, err := uc.repo.ListByEvent(ctx, eventID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.result.usecase.GetEventResults: %v", err)
		return nil, err
	}
	return results, nil
}

func (uc *usecase) GetAthleteResults(ctx context.Context, sc model.Scope, athleteID string) ([]model.Result, error) {
	results, err := uc.repo.ListByAthlete(ctx, athleteID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.result.usecase.GetAthleteResults: %v", err)
		return nil, err
	}
	return results, nil
}
