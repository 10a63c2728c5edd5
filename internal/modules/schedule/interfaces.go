package schedule

import (
	"context"
	"time"
)

// NotificationSender pushes schedule lifecycle events to whoever listens
// (the websocket hub in production). Optional; nil disables notifications.
type NotificationSender interface {
	NotifyScheduleCreated(ctx context.Context, companyID, scheduleID, activityID int64, date time.Time) error
	NotifyScheduleCancelled(ctx context.Context, companyID, scheduleID int64, reason string) error
}
