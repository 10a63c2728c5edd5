package domain

import "time"

type SupportStatus string

const (
	SupportOpen   SupportStatus = "open"
	SupportClosed SupportStatus = "closed"
)

type SupportRequest struct {
	ID        int64         `json:"id" gorm:"column:id;primaryKey"`
	CompanyID int64         `json:"company_id" gorm:"column:company_id;not null;index"`
	UserID    int64         `json:"user_id" gorm:"column:user_id;not null"`
	Subject   string        `json:"subject" gorm:"column:subject;not null" validate:"required"`
	Message   string        `json:"message" gorm:"column:message;type:text;not null" validate:"required"`
	Status    SupportStatus `json:"status" gorm:"column:status;type:varchar(16);not null;default:'open'"`
	CreatedAt time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (SupportRequest) TableName() string { return "support_requests" }
