package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderActive    OrderStatus = "active"
	OrderExpired   OrderStatus = "expired"
	OrderCancelled OrderStatus = "cancelled"
)

// ServiceOrder is a purchased bundle of booking allowances over a duration.
// It stays PENDING until the payment gateway confirms the checkout, then
// runs ACTIVE from start_date to end_date and is expired by the expiry job.
type ServiceOrder struct {
	ID             int64       `json:"id" gorm:"column:id;primaryKey"`
	CompanyID      int64       `json:"company_id" gorm:"column:company_id;not null;index"`
	Participants   int         `json:"participants" gorm:"column:participants;not null"`
	DurationMonths int         `json:"duration_months" gorm:"column:duration_months;not null"`
	TotalCost      float64     `json:"total_cost" gorm:"column:total_cost;not null"`
	Status         OrderStatus `json:"status" gorm:"column:status;type:varchar(16);not null;default:'pending';index"`
	StartDate      *time.Time  `json:"start_date,omitempty" gorm:"column:start_date"`
	EndDate        *time.Time  `json:"end_date,omitempty" gorm:"column:end_date"`
	CreatedAt      time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"column:updated_at"`

	Details []ServiceOrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID"`
}

func (ServiceOrder) TableName() string { return "service_orders" }

// ServiceOrderDetail is one per-activity-type allowance line of an order.
type ServiceOrderDetail struct {
	ID              int64        `json:"id" gorm:"column:id;primaryKey"`
	OrderID         int64        `json:"order_id" gorm:"column:order_id;not null;index"`
	ServiceType     ActivityType `json:"service_type" gorm:"column:service_type;type:varchar(16);not null"`
	Frequency       int          `json:"frequency" gorm:"column:frequency;not null"`
	AllowedBookings int          `json:"allowed_bookings" gorm:"column:allowed_bookings;not null"`
	BookingsUsed    int          `json:"bookings_used" gorm:"column:bookings_used;not null;default:0"`
}

func (ServiceOrderDetail) TableName() string { return "service_order_details" }

func (d *ServiceOrderDetail) Remaining() int {
	return d.AllowedBookings - d.BookingsUsed
}
