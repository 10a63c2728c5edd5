package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentCreated PaymentStatus = "created"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentPurpose string

const (
	PurposeOrder       PaymentPurpose = "order"
	PurposeCreditTopUp PaymentPurpose = "credit_topup"
)

// Payment is one gateway checkout attempt. InvID is the invoice number sent
// to the gateway and echoed back in the webhook; Amount is kept as the exact
// string handed to the gateway so callback comparison is byte-stable.
type Payment struct {
	ID          uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	CompanyID   int64          `json:"company_id" gorm:"column:company_id;not null;index"`
	Purpose     PaymentPurpose `json:"purpose" gorm:"column:purpose;type:varchar(16);not null"`
	OrderID     *int64         `json:"order_id,omitempty" gorm:"column:order_id"`
	Credits     int64          `json:"credits,omitempty" gorm:"column:credits;not null;default:0"`
	Amount      string         `json:"amount" gorm:"column:amount;not null"`
	InvID       int64          `json:"inv_id" gorm:"column:inv_id;uniqueIndex;not null"`
	Status      PaymentStatus  `json:"status" gorm:"column:status;type:varchar(16);not null;default:'created'"`
	Signature   string         `json:"-" gorm:"column:signature"`
	CheckoutURL string         `json:"checkout_url" gorm:"column:checkout_url;type:text"`
	RawBody     string         `json:"-" gorm:"column:raw_body;type:text"`
	FailReason  string         `json:"fail_reason,omitempty" gorm:"column:fail_reason"`
	PaidAt      *time.Time     `json:"paid_at,omitempty" gorm:"column:paid_at"`
	CreatedAt   time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
