package serviceorder

import (
	"time"

	"gorm.io/gorm"

	"joyit/internal/domain"
)

// Transaction-scoped allowance operations, shared with the schedule
// workflow so a booking and its allowance mutation commit together.

// FindUsableDetail returns a detail line of an active, unexpired order for
// the company matching the activity type with remaining allowance, or
// nil when there is none.
func FindUsableDetail(tx *gorm.DB, companyID int64, t domain.ActivityType, now time.Time) (*domain.ServiceOrderDetail, error) {
	var d domain.ServiceOrderDetail
	err := tx.
		Joins("JOIN service_orders ON service_orders.id = service_order_details.order_id").
		Where("service_orders.company_id = ?", companyID).
		Where("service_orders.status = ?", domain.OrderActive).
		Where("service_orders.end_date >= ?", now).
		Where("service_order_details.service_type = ?", t).
		Where("service_order_details.bookings_used < service_order_details.allowed_bookings").
		Order("service_orders.end_date").
		First(&d).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// ConsumeAllowance increments bookings_used guarded by the remaining
// allowance, so two concurrent bookings cannot both take the last slot.
func ConsumeAllowance(tx *gorm.DB, detailID int64) (bool, error) {
	res := tx.Model(&domain.ServiceOrderDetail{}).
		Where("id = ? AND bookings_used < allowed_bookings", detailID).
		UpdateColumn("bookings_used", gorm.Expr("bookings_used + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ReleaseAllowance gives one booking back on cancellation.
func ReleaseAllowance(tx *gorm.DB, detailID int64) error {
	return tx.Model(&domain.ServiceOrderDetail{}).
		Where("id = ? AND bookings_used > 0", detailID).
		UpdateColumn("bookings_used", gorm.Expr("bookings_used - 1")).Error
}
