package repository

import (
	"context"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type SupportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) Create(ctx context.Context, req *domain.SupportRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *SupportRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.SupportRequest, error) {
	var out []domain.SupportRequest
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *SupportRepository) Close(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.SupportRequest{}).
		Where("id = ?", id).
		Update("status", domain.SupportClosed).Error
}
