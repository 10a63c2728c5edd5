package schedule

import "time"

type CreateScheduleRequest struct {
	ActivityID   int64     `json:"activity_id" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Participants int       `json:"participants" binding:"required,gt=0"`
	Notes        string    `json:"notes"`
}

type UpdateScheduleRequest struct {
	ActivityID   *int64     `json:"activity_id"`
	Date         *time.Time `json:"date"`
	Participants *int       `json:"participants"`
	Notes        *string    `json:"notes"`
}
