package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditEntryType string

const (
	CreditGrant  CreditEntryType = "GRANT"
	CreditTopUp  CreditEntryType = "TOPUP"
	CreditSpend  CreditEntryType = "SPEND"
	CreditRefund CreditEntryType = "REFUND"
)

// CreditEntry is one signed row of the append-only company credit ledger.
// Balance is the company balance after this entry was applied, so the
// current balance can always be explained from history.
type CreditEntry struct {
	ID         uuid.UUID       `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	CompanyID  int64           `json:"company_id" gorm:"column:company_id;not null;index"`
	Amount     int64           `json:"amount" gorm:"column:amount;not null"`
	Type       CreditEntryType `json:"type" gorm:"column:type;type:varchar(16);not null;index;check:type IN ('GRANT','TOPUP','SPEND','REFUND')"`
	ScheduleID *int64          `json:"schedule_id,omitempty" gorm:"column:schedule_id"`
	Note       string          `json:"note,omitempty" gorm:"column:note"`
	Balance    int64           `json:"balance" gorm:"column:balance;not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (CreditEntry) TableName() string { return "credit_entries" }

func (e *CreditEntry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
