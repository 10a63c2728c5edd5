package domain

import "time"

type Company struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey"`
	Name         string `json:"name" gorm:"column:name;not null" validate:"required"`
	Industry     string `json:"industry,omitempty" gorm:"column:industry"`
	ContactEmail string `json:"contact_email" gorm:"column:contact_email;not null"`
	ContactPhone string `json:"contact_phone,omitempty" gorm:"column:contact_phone"`

	// Cached fold of the credit ledger. Mutated only through credit.Apply
	// inside a transaction holding the row lock.
	CreditBalance int64 `json:"credit_balance" gorm:"column:credit_balance;not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Subscription *Subscription `json:"subscription,omitempty" gorm:"foreignKey:CompanyID"`
}

func (Company) TableName() string { return "companies" }
