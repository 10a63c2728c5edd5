package domain

import "time"

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCanceled  ScheduleStatus = "canceled"
)

// FundingSource records how a booking was paid for, so cancellation
// refunds the right thing.
type FundingSource string

const (
	FundingCredit FundingSource = "credit"
	FundingOrder  FundingSource = "order"
)

// Schedule is one booked activity occurrence for a company.
type Schedule struct {
	ID           int64          `json:"id" gorm:"column:id;primaryKey"`
	CompanyID    int64          `json:"company_id" gorm:"column:company_id;not null;index"`
	ActivityID   int64          `json:"activity_id" gorm:"column:activity_id;not null"`
	Date         time.Time      `json:"date" gorm:"column:date;not null"`
	Participants int            `json:"participants" gorm:"column:participants;not null"`
	Status       ScheduleStatus `json:"status" gorm:"column:status;type:varchar(16);not null;default:'pending';index"`
	Notes        string         `json:"notes,omitempty" gorm:"column:notes;type:text"`

	// Funding captured at booking time. CreditCost is the amount actually
	// debited, kept on the row so a later catalog price change cannot skew
	// the refund.
	Funding       FundingSource `json:"funding" gorm:"column:funding;type:varchar(16);not null"`
	CreditCost    int64         `json:"credit_cost" gorm:"column:credit_cost;not null;default:0"`
	OrderDetailID *int64        `json:"order_detail_id,omitempty" gorm:"column:order_detail_id"`

	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" gorm:"column:cancelled_at"`

	Activity *Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
}

func (Schedule) TableName() string { return "schedules" }
