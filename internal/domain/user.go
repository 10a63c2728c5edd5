package domain

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	CompanyID    *int64    `json:"company_id,omitempty" gorm:"column:company_id;index"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Name         string    `json:"name" gorm:"column:name"`
	Role         UserRole  `json:"role" gorm:"column:role;type:varchar(16);not null;default:'member'"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

func (User) TableName() string { return "users" }
