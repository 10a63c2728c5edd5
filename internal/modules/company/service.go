package company

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"joyit/internal/domain"
	"joyit/internal/repository"
)

var ErrNotFound = errors.New("company not found")

type Service struct {
	repo *repository.CompanyRepository
}

func NewService(repo *repository.CompanyRepository) *Service {
	return &Service{repo: repo}
}

// Profile returns the company with its active subscription attached.
func (s *Service) Profile(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.repo.GetWithSubscription(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Industry     *string `json:"industry"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*domain.Company, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Industry != nil {
		c.Industry = *req.Industry
	}
	if req.ContactEmail != nil {
		c.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		c.ContactPhone = *req.ContactPhone
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	return s.repo.List(ctx, limit, offset)
}
