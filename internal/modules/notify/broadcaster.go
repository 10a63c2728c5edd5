package notify

import (
	"context"
	"time"
)

// Broadcaster adapts the hub to the schedule module's notification
// interface.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) NotifyScheduleCreated(_ context.Context, companyID, scheduleID, activityID int64, date time.Time) error {
	b.hub.SendToCompany(companyID, &Event{
		Type:      EventScheduleCreated,
		CompanyID: companyID,
		Payload: map[string]interface{}{
			"schedule_id": scheduleID,
			"activity_id": activityID,
			"date":        date,
		},
	})
	return nil
}

func (b *Broadcaster) NotifyScheduleCancelled(_ context.Context, companyID, scheduleID int64, reason string) error {
	b.hub.SendToCompany(companyID, &Event{
		Type:      EventScheduleCancelled,
		CompanyID: companyID,
		Payload: map[string]interface{}{
			"schedule_id": scheduleID,
			"reason":      reason,
		},
	})
	return nil
}
