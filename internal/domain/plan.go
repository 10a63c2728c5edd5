package domain

import "time"

// Plan is a named bundle of bookable activities. Reference data created by
// a platform admin; companies subscribe to exactly one plan at a time.
type Plan struct {
	ID          int64      `json:"id" gorm:"column:id;primaryKey"`
	Name        string     `json:"name" gorm:"column:name;uniqueIndex;not null" validate:"required"`
	Description string     `json:"description,omitempty" gorm:"column:description;type:text"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
	Activities  []Activity `json:"activities,omitempty" gorm:"many2many:plan_activities"`
}

func (Plan) TableName() string { return "plans" }

// Includes reports whether the plan bundles the given activity.
func (p *Plan) Includes(activityID int64) bool {
	for _, a := range p.Activities {
		if a.ID == activityID {
			return true
		}
	}
	return false
}
