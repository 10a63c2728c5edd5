package repository

import (
	"context"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetWithSubscription loads the company together with its active
// subscription, plan and plan activities.
func (r *CompanyRepository) GetWithSubscription(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.WithContext(ctx).
		Preload("Subscription", "status = ?", domain.SubscriptionActive).
		Preload("Subscription.Plan").
		Preload("Subscription.Plan.Activities").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Model(&domain.Company{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":          c.Name,
			"industry":      c.Industry,
			"contact_email": c.ContactEmail,
			"contact_phone": c.ContactPhone,
		}).Error
}

func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	var out []domain.Company
	q := r.db.WithContext(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
