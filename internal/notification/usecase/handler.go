package usecase

import (
	"context"
	"fmt"

	"ciblsport-api/internal/dispatch"
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification"
)

// HandleEvent maps domain events onto feed notifications. The mapping
// (titles, messages, priorities) lives here so producing domains stay
// unaware of how their events surface to users.
func (uc *usecase) HandleEvent(ctx context.Context, evt dispatch.Event) {
	var ip notification.AddInput

	switch evt.Type {
	case dispatch.EventTypeResultRecorded:
		res, ok := evt.Payload.(model.Result)
		if !ok {
			uc.l.Warnf(ctx, "internal.notification.usecase.HandleEvent: unexpected payload for %s", evt.Type)
			return
		}
		ip = resultInput(res)

	case dispatch.EventTypeEventCompleted:
		ev, ok := evt.Payload.(model.Event)
		if !ok {
			uc.l.Warnf(ctx, "internal.notification.usecase.HandleEvent: unexpected payload for %s", evt.Type)
			return
		}
		ip = notification.AddInput{
			Type:     model.NotificationTypeEvent,
			Title:    "Event Completed",
			Message:  fmt.Sprintf("%s has finished", ev.Name),
			Priority: model.PriorityMedium,
			Category: ev.Sport,
		}

	case dispatch.EventTypeIncidentReported:
		inc, ok := evt.Payload.(model.Incident)
		if !ok {
			uc.l.Warnf(ctx, "internal.notification.usecase.HandleEvent: unexpected payload for %s", evt.Type)
			return
		}
		ip = notification.AddInput{
			Type:     model.NotificationTypeSecurity,
			Title:    "Security Incident",
			Message:  fmt.Sprintf("%s at %s", inc.Title, inc.Location),
			Priority: incidentPriority(inc.Severity),
			Category: inc.Type,
		}

	case dispatch.EventTypeAlertCreated:
		alert, ok := evt.Payload.(model.Alert)
		if !ok {
			uc.l.Warnf(ctx, "internal.notification.usecase.HandleEvent: unexpected payload for %s", evt.Type)
			return
		}
		ip = notification.AddInput{
			Type:     model.NotificationTypeSecurity,
			Title:    alert.Title,
			Message:  alert.Message,
			Priority: alertPriority(alert.Type),
			Category: alert.Type,
		}

	default:
		return
	}

	if _, _, err := uc.Add(ctx, ip); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.HandleEvent.Add: %v", err)
	}
}

func resultInput(res model.Result) notification.AddInput {
	// Position <= 3 is high priority, including 0 (DNS/DNF placeholders).
	priority := model.PriorityMedium
	if res.Position <= 3 {
		priority = model.PriorityHigh
	}

	message := fmt.Sprintf("%s finished %s", res.AthleteName, ordinal(res.Position))
	if res.Time != "" {
		message = fmt.Sprintf("%s (%s)", message, res.Time)
	}

	return notification.AddInput{
		Type:     model.NotificationTypeResult,
		Title:    "New Result",
		Message:  message,
		Priority: priority,
	}
}

// ordinal renders a finishing position as English ordinal text.
func ordinal(position int) string {
	if position <= 0 {
		return "unplaced"
	}
	suffix := "th"
	switch position % 10 {
	case 1:
		if position%100 != 11 {
			suffix = "st"
		}
	case 2:
		if position%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if position%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", position, suffix)
}

func incidentPriority(severity string) string {
	switch severity {
	case model.SeverityCritical:
		return model.PriorityUrgent
	case model.SeverityHigh:
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

func alertPriority(alertType string) string {
	switch alertType {
	case model.AlertTypeEmergency:
		return model.PriorityUrgent
	case model.AlertTypeWarning:
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}
