package credit

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Balance(ctx context.Context, companyID int64) (int64, error) {
	var company domain.Company
	if err := s.db.WithContext(ctx).First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCompanyNotFound
		}
		return 0, err
	}
	return company.CreditBalance, nil
}

func (s *Service) ListEntries(ctx context.Context, companyID int64, limit, offset int) ([]domain.CreditEntry, error) {
	var out []domain.CreditEntry
	q := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Grant credits a company directly (admin operation).
func (s *Service) Grant(ctx context.Context, companyID, amount int64, note string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var balance int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = Apply(tx, companyID, amount, domain.CreditGrant, nil, note)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// ApplyTopUp credits a company after a confirmed top-up payment. Called by
// the payment webhook flow. Idempotent per note: the note carries the
// invoice id, so a redelivered webhook cannot credit the same invoice twice.
func (s *Service) ApplyTopUp(ctx context.Context, companyID, amount int64, note string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&domain.CreditEntry{}).
			Where("company_id = ? AND type = ? AND note = ?", companyID, domain.CreditTopUp, note).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = Apply(tx, companyID, amount, domain.CreditTopUp, nil, note)
		return err
	})
}
