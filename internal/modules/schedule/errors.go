package schedule

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("schedule not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrNoSubscription    = errors.New("company has no active subscription")
	ErrNotInPlan         = errors.New("activity is not included in the subscribed plan")
	ErrInvalidTransition = errors.New("invalid status transition")
)
