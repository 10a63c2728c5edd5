package pricing

import (
	"errors"

	"joyit/internal/domain"
)

var ErrInvalidParams = errors.New("invalid pricing parameters")

// Params describes one quote request.
type Params struct {
	Participants int  `json:"participants" binding:"required"`
	Months       int  `json:"months" binding:"required"`
	Snacking     bool `json:"snacking"`
	Teambuilding bool `json:"teambuilding"`
	WellBeing    bool `json:"well_being"`

	// Occurrences per month for the frequency-based services.
	SnackingFrequency  int `json:"snacking_frequency"`
	WellBeingFrequency int `json:"well_being_frequency"`
}

// Calculate quotes a service bundle against the current rate configuration.
//
//	total = base * participants * months
//	      + participants * months * snackingFreq * snackingRate   (snacking)
//	      + participants * months * teambuildingRate              (teambuilding)
//	      + participants * months * wellBeingFreq * wellBeingRate (well-being)
func Calculate(cfg domain.Pricing, p Params) (float64, error) {
	if p.Participants < cfg.MinEmployees || p.Participants <= 0 {
		return 0, ErrInvalidParams
	}
	if p.Months < cfg.MinMonths || p.Months <= 0 {
		return 0, ErrInvalidParams
	}
	if p.SnackingFrequency < 0 || p.WellBeingFrequency < 0 {
		return 0, ErrInvalidParams
	}
	if p.Snacking && p.SnackingFrequency == 0 {
		return 0, ErrInvalidParams
	}
	if p.WellBeing && p.WellBeingFrequency == 0 {
		return 0, ErrInvalidParams
	}

	seats := float64(p.Participants) * float64(p.Months)

	total := cfg.BasePrice * seats
	if p.Snacking {
		total += seats * float64(p.SnackingFrequency) * cfg.SnackingRate
	}
	if p.Teambuilding {
		total += seats * cfg.TeambuildingRate
	}
	if p.WellBeing {
		total += seats * float64(p.WellBeingFrequency) * cfg.WellBeingRate
	}

	return total, nil
}
