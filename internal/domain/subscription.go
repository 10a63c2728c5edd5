package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// Subscription links a company to a plan for a period. At most one active
// subscription per company; subscribing again cancels the previous one.
type Subscription struct {
	ID        int64              `json:"id" gorm:"column:id;primaryKey"`
	CompanyID int64              `json:"company_id" gorm:"column:company_id;not null;index"`
	PlanID    int64              `json:"plan_id" gorm:"column:plan_id;not null"`
	Status    SubscriptionStatus `json:"status" gorm:"column:status;type:varchar(16);not null;default:'active'"`
	StartDate time.Time          `json:"start_date" gorm:"column:start_date;not null"`
	EndDate   time.Time          `json:"end_date" gorm:"column:end_date;not null"`
	CreatedAt time.Time          `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time          `json:"updated_at" gorm:"column:updated_at"`

	Plan *Plan `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) IsExpired() bool {
	return time.Now().After(s.EndDate)
}

// IsUsable reports whether bookings may be made against this subscription.
func (s *Subscription) IsUsable() bool {
	return s.Status == SubscriptionActive && !s.IsExpired()
}
