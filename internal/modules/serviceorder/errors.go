package serviceorder

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("service order not found")
	ErrForbidden  = errors.New("order belongs to another company")
)
