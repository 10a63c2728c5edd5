package auth

import "joyit/internal/domain"

type RegisterRequest struct {
	CompanyName  string `json:"company_name" binding:"required"`
	Industry     string `json:"industry"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Name         string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	User    *domain.User    `json:"user"`
	Company *domain.Company `json:"company,omitempty"`
}
