package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"joyit/internal/domain"
	"joyit/internal/pkg/jwt"
	"joyit/internal/repository"
)

type Service struct {
	db     *gorm.DB
	users  *repository.UserRepository
	tokens *jwt.Service
}

func NewService(db *gorm.DB, users *repository.UserRepository, tokens *jwt.Service) *Service {
	return &Service{db: db, users: users, tokens: tokens}
}

// Register creates the company and its first user together. Either both
// rows exist afterwards or neither does. Self-registered users are always
// members; the platform admin role is never issued through the public API.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		Name:         req.CompanyName,
		Industry:     req.Industry,
		ContactEmail: normalizeEmail(req.Email),
		ContactPhone: req.ContactPhone,
	}
	user := &domain.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         domain.RoleMember,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		user.CompanyID = &company.ID
		return tx.Create(user).Error
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, company.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user, Company: company}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByEmailWithCompany(ctx, req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	var companyID int64
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	token, err := s.tokens.GenerateToken(user.ID, companyID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user, Company: user.Company}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByIDWithCompany(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
