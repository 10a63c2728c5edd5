package subscription

import "errors"

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrNoSubscription  = errors.New("no active subscription")
	ErrInvalidDuration = errors.New("invalid subscription duration")
)
