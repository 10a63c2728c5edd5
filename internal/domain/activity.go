package domain

import "time"

// ActivityType matches service-order details against catalog activities.
type ActivityType string

const (
	ActivityWellbeing    ActivityType = "wellbeing"
	ActivityTeambuilding ActivityType = "teambuilding"
	ActivitySnacking     ActivityType = "snacking"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityWellbeing, ActivityTeambuilding, ActivitySnacking:
		return true
	}
	return false
}

type Activity struct {
	ID          int64        `json:"id" gorm:"column:id;primaryKey"`
	Name        string       `json:"name" gorm:"column:name;not null" validate:"required"`
	Description string       `json:"description,omitempty" gorm:"column:description;type:text"`
	Type        ActivityType `json:"type" gorm:"column:type;type:varchar(16);not null;index" validate:"required"`
	CreditCost  int64        `json:"credit_cost" gorm:"column:credit_cost;not null" validate:"gte=0"`
	IsActive    bool         `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time    `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"column:updated_at"`
}

func (Activity) TableName() string { return "activities" }
