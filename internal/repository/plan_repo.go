package repository

import (
	"context"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create persists the plan and its activity associations.
func (r *PlanRepository) Create(ctx context.Context, p *domain.Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	var p domain.Plan
	if err := r.db.WithContext(ctx).Preload("Activities").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanRepository) List(ctx context.Context, onlyActive bool) ([]domain.Plan, error) {
	var out []domain.Plan
	q := r.db.WithContext(ctx).Preload("Activities").Order("id")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceActivities swaps the plan's activity bundle.
func (r *PlanRepository) ReplaceActivities(ctx context.Context, planID int64, activities []domain.Activity) error {
	p := domain.Plan{ID: planID}
	return r.db.WithContext(ctx).Model(&p).Association("Activities").Replace(activities)
}
