package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"joyit/internal/domain"
)

type ServiceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

// Create persists the order together with its detail lines.
func (r *ServiceOrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	if err := r.db.WithContext(ctx).Preload("Details").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ServiceOrderRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.ServiceOrder, error) {
	var out []domain.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Details").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Activate transitions a paid order to ACTIVE and stamps its validity
// window. Idempotent: an already active order is left untouched.
func (r *ServiceOrderRepository) Activate(ctx context.Context, orderID int64, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o domain.ServiceOrder
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&o, orderID).Error; err != nil {
			return err
		}
		if o.Status == domain.OrderActive {
			return nil
		}
		end := now.AddDate(0, o.DurationMonths, 0)
		return tx.Model(&domain.ServiceOrder{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"status":     domain.OrderActive,
			"start_date": now,
			"end_date":   end,
		}).Error
	})
}

// ExpirePast flips active orders whose validity window has closed.
func (r *ServiceOrderRepository) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.ServiceOrder{}).
		Where("status = ? AND end_date < ?", domain.OrderActive, now).
		Update("status", domain.OrderExpired)
	return res.RowsAffected, res.Error
}

// FindUsableDetail returns a detail of an active, unexpired order for the
// company matching the activity type with remaining allowance. nil, nil
// when there is none.
func (r *ServiceOrderRepository) FindUsableDetail(ctx context.Context, companyID int64, t domain.ActivityType, now time.Time) (*domain.ServiceOrderDetail, error) {
	var d domain.ServiceOrderDetail
	err := r.db.WithContext(ctx).
		Joins("JOIN service_orders ON service_orders.id = service_order_details.order_id").
		Where("service_orders.company_id = ?", companyID).
		Where("service_orders.status = ?", domain.OrderActive).
		Where("service_orders.end_date >= ?", now).
		Where("service_order_details.service_type = ?", t).
		Where("service_order_details.bookings_used < service_order_details.allowed_bookings").
		Order("service_orders.end_date").
		First(&d).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
