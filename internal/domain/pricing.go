package domain

import "time"

// Pricing is the singleton rate configuration read by the quote calculator.
// Created lazily with defaults when absent.
type Pricing struct {
	ID               int64     `json:"id" gorm:"column:id;primaryKey"`
	BasePrice        float64   `json:"base_price" gorm:"column:base_price;not null"`
	SnackingRate     float64   `json:"snacking_rate" gorm:"column:snacking_rate;not null"`
	TeambuildingRate float64   `json:"teambuilding_rate" gorm:"column:teambuilding_rate;not null"`
	WellBeingRate    float64   `json:"well_being_rate" gorm:"column:well_being_rate;not null"`
	MinEmployees     int       `json:"min_employees" gorm:"column:min_employees;not null;default:1"`
	MinMonths        int       `json:"min_months" gorm:"column:min_months;not null;default:1"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Pricing) TableName() string { return "pricing" }

// DefaultPricing seeds the singleton row on first use.
func DefaultPricing() Pricing {
	return Pricing{
		BasePrice:        100,
		SnackingRate:     10,
		TeambuildingRate: 50,
		WellBeingRate:    20,
		MinEmployees:     1,
		MinMonths:        1,
	}
}
