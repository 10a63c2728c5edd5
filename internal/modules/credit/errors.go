package credit

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrCompanyNotFound    = errors.New("company not found")
)
