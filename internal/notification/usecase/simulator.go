package usecase

import (
	"context"
	"math/rand"
	"time"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification"
)

// demoNotifications is the pool the simulator draws from.
var demoNotifications = []notification.AddInput{
	{
		Type:     model.NotificationTypeResult,
		Title:    "New Result",
		Message:  "Léon Marchand finished 1st (4:02.50)",
		Priority: model.PriorityHigh,
	},
	{
		Type:     model.NotificationTypeEvent,
		Title:    "Event Starting Soon",
		Message:  "Women's 100m Freestyle Final starts in 15 minutes",
		Priority: model.PriorityMedium,
	},
	{
		Type:     model.NotificationTypeSecurity,
		Title:    "Crowd Advisory",
		Message:  "Heavy traffic at the main entrance, use gate B",
		Priority: model.PriorityMedium,
	},
	{
		Type:     model.NotificationTypePersonal,
		Title:    "Schedule Update",
		Message:  "Your next session has been moved to pool 2",
		Priority: model.PriorityMedium,
	},
}

// RunSimulator periodically emits a random demo notification until ctx is
// done. Each tick has a 30% chance of producing one, mimicking organic
// traffic during demos.
func (uc *usecase) RunSimulator(ctx context.Context) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(uc.simulatorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if rng.Float64() >= 0.3 {
				continue
			}
			ip := demoNotifications[rng.Intn(len(demoNotifications))]
			if _, _, err := uc.Add(ctx, ip); err != nil {
				uc.l.Errorf(ctx, "internal.notification.usecase.RunSimulator: %v", err)
			}
		}
	}
}
