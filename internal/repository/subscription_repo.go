package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetActiveByCompanyID returns nil, nil when the company has no active
// subscription.
func (r *SubscriptionRepository) GetActiveByCompanyID(ctx context.Context, companyID int64) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Preload("Plan.Activities").
		Where("company_id = ? AND status = ?", companyID, domain.SubscriptionActive).
		Order("start_date DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) Cancel(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("id = ?", id).
		Update("status", domain.SubscriptionCancelled).Error
}

// ExpirePast flips active subscriptions whose end date has passed.
func (r *SubscriptionRepository) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("status = ? AND end_date < ?", domain.SubscriptionActive, now).
		Update("status", domain.SubscriptionExpired)
	return res.RowsAffected, res.Error
}
