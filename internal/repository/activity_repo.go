package repository

import (
	"context"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	return r.db.WithContext(ctx).Model(&domain.Activity{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"name":        a.Name,
			"description": a.Description,
			"type":        a.Type,
			"credit_cost": a.CreditCost,
			"is_active":   a.IsActive,
		}).Error
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	var a domain.Activity
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) List(ctx context.Context, onlyActive bool) ([]domain.Activity, error) {
	var out []domain.Activity
	q := r.db.WithContext(ctx).Order("id")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
