package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	var s domain.Schedule
	if err := r.db.WithContext(ctx).Preload("Activity").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.Schedule, error) {
	var out []domain.Schedule
	q := r.db.WithContext(ctx).
		Preload("Activity").
		Where("company_id = ?", companyID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ScheduleRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Schedule, error) {
	var out []domain.Schedule
	q := r.db.WithContext(ctx).Preload("Activity").Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&out).Error
	return out, err
}

// CompletePast marks past-dated pending schedules as completed.
func (r *ScheduleRepository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("status = ? AND date < ?", domain.SchedulePending, now).
		Update("status", domain.ScheduleCompleted)
	return res.RowsAffected, res.Error
}
