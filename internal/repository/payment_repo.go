package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"joyit/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByInvID(ctx context.Context, invID int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("inv_id = ?", invID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error {
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("inv_id = ?", invID).
		Updates(map[string]interface{}{
			"status":      domain.PaymentFailed,
			"raw_body":    rawBody,
			"fail_reason": reason,
		}).Error
}

// MarkPaidIdempotent transitions the payment to paid exactly once. Returns
// false when the row was already paid (duplicate webhook delivery).
func (r *PaymentRepository) MarkPaidIdempotent(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error) {
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p domain.Payment
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.Where("inv_id = ?", invID).First(&p).Error; err != nil {
			return err
		}
		if p.Status == domain.PaymentPaid {
			changed = false
			return nil
		}
		res := tx.Model(&domain.Payment{}).Where("inv_id = ?", invID).Updates(map[string]interface{}{
			"status":   domain.PaymentPaid,
			"raw_body": rawBody,
			"paid_at":  paidAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("payment row not updated")
		}
		changed = true
		return nil
	})
	return changed, err
}
