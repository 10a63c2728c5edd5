package schedule

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"joyit/internal/domain"
	"joyit/internal/modules/credit"
	"joyit/internal/modules/serviceorder"
	"joyit/internal/repository"
)

// Service runs the booking workflow. Every path that touches funding
// (credit debit/refund or order allowance) commits together with the
// schedule mutation in a single transaction, so a failure partway leaves
// nothing half-applied. Reads go through the repository.
type Service struct {
	db     *gorm.DB
	repo   *repository.ScheduleRepository
	notifs NotificationSender
}

func NewService(db *gorm.DB, repo *repository.ScheduleRepository, notifs NotificationSender) *Service {
	return &Service{db: db, repo: repo, notifs: notifs}
}

// Create books one activity occurrence. The activity must be part of the
// company's subscribed plan. Funding prefers a usable service-order
// allowance; otherwise the activity's credit cost is debited from the
// company balance.
func (s *Service) Create(ctx context.Context, companyID int64, req CreateScheduleRequest) (*domain.Schedule, error) {
	if req.Participants <= 0 {
		return nil, ErrValidation
	}
	now := time.Now()
	if req.Date.Before(now) {
		return nil, ErrValidation
	}

	var sched *domain.Schedule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		activity, err := loadActivity(tx, req.ActivityID)
		if err != nil {
			return err
		}

		if err := checkEntitlement(tx, companyID, activity.ID, now); err != nil {
			return err
		}

		funding, detailID, cost, err := chargeFunding(tx, companyID, activity, now)
		if err != nil {
			return err
		}

		sched = &domain.Schedule{
			CompanyID:     companyID,
			ActivityID:    activity.ID,
			Date:          req.Date,
			Participants:  req.Participants,
			Status:        domain.SchedulePending,
			Notes:         req.Notes,
			Funding:       funding,
			CreditCost:    cost,
			OrderDetailID: detailID,
		}
		if err := tx.Create(sched).Error; err != nil {
			return err
		}

		if funding == domain.FundingCredit && cost > 0 {
			if _, err := credit.Apply(tx, companyID, -cost, domain.CreditSpend, &sched.ID, "booking "+activity.Name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyScheduleCreated(ctx, companyID, sched.ID, sched.ActivityID, sched.Date)
	}

	return sched, nil
}

// Update edits a pending booking. Switching the activity refunds the old
// funding and charges the new one inside the same transaction.
func (s *Service) Update(ctx context.Context, id, companyID int64, req UpdateScheduleRequest) (*domain.Schedule, error) {
	var out *domain.Schedule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sched, err := loadOwned(tx, id, companyID)
		if err != nil {
			return err
		}
		if sched.Status != domain.SchedulePending {
			return ErrInvalidTransition
		}

		now := time.Now()
		if req.Date != nil {
			if req.Date.Before(now) {
				return ErrValidation
			}
			sched.Date = *req.Date
		}
		if req.Participants != nil {
			if *req.Participants <= 0 {
				return ErrValidation
			}
			sched.Participants = *req.Participants
		}
		if req.Notes != nil {
			sched.Notes = *req.Notes
		}

		if req.ActivityID != nil && *req.ActivityID != sched.ActivityID {
			activity, err := loadActivity(tx, *req.ActivityID)
			if err != nil {
				return err
			}
			if err := checkEntitlement(tx, companyID, activity.ID, now); err != nil {
				return err
			}

			if err := refundFunding(tx, sched); err != nil {
				return err
			}

			funding, detailID, cost, err := chargeFunding(tx, companyID, activity, now)
			if err != nil {
				return err
			}

			sched.ActivityID = activity.ID
			sched.Funding = funding
			sched.CreditCost = cost
			sched.OrderDetailID = detailID

			if funding == domain.FundingCredit && cost > 0 {
				if _, err := credit.Apply(tx, companyID, -cost, domain.CreditSpend, &sched.ID, "booking "+activity.Name); err != nil {
					return err
				}
			}
		}

		if err := tx.Save(sched).Error; err != nil {
			return err
		}
		out = sched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel is only allowed from PENDING and restores the booking's funding.
func (s *Service) Cancel(ctx context.Context, id, companyID int64, reason string) (*domain.Schedule, error) {
	var out *domain.Schedule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sched, err := loadOwned(tx, id, companyID)
		if err != nil {
			return err
		}
		if sched.Status != domain.SchedulePending {
			return ErrInvalidTransition
		}

		now := time.Now()
		sched.Status = domain.ScheduleCanceled
		sched.CancelledAt = &now
		if err := tx.Save(sched).Error; err != nil {
			return err
		}

		if err := refundFunding(tx, sched); err != nil {
			return err
		}
		out = sched
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyScheduleCancelled(ctx, companyID, out.ID, reason)
	}

	return out, nil
}

// Delete removes the row for good and never touches credit. A pending
// booking has live funding attached, it must be cancelled first.
func (s *Service) Delete(ctx context.Context, id, companyID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sched, err := loadOwned(tx, id, companyID)
		if err != nil {
			return err
		}
		if sched.Status == domain.SchedulePending {
			return ErrInvalidTransition
		}
		return tx.Delete(&domain.Schedule{}, sched.ID).Error
	})
}

func (s *Service) GetByID(ctx context.Context, id, companyID int64) (*domain.Schedule, error) {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Not-found and not-yours look the same to the caller.
	if sched.CompanyID != companyID {
		return nil, ErrNotFound
	}
	return sched, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.Schedule, error) {
	return s.repo.ListByCompany(ctx, companyID, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]domain.Schedule, error) {
	return s.repo.ListAll(ctx, limit, offset)
}

func loadActivity(tx *gorm.DB, id int64) (*domain.Activity, error) {
	var activity domain.Activity
	if err := tx.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	if !activity.IsActive {
		return nil, ErrActivityNotFound
	}
	return &activity, nil
}

func loadOwned(tx *gorm.DB, id, companyID int64) (*domain.Schedule, error) {
	var sched domain.Schedule
	if err := tx.Where("id = ? AND company_id = ?", id, companyID).First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sched, nil
}

// checkEntitlement verifies the company has a usable subscription whose
// plan bundles the activity.
func checkEntitlement(tx *gorm.DB, companyID, activityID int64, now time.Time) error {
	var sub domain.Subscription
	err := tx.
		Preload("Plan").
		Preload("Plan.Activities").
		Where("company_id = ? AND status = ?", companyID, domain.SubscriptionActive).
		Order("start_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoSubscription
		}
		return err
	}
	if now.After(sub.EndDate) {
		return ErrNoSubscription
	}
	if sub.Plan == nil || !sub.Plan.Includes(activityID) {
		return ErrNotInPlan
	}
	return nil
}

// chargeFunding picks how the booking is paid for: a matching active
// service-order allowance when one has bookings left, the company credit
// balance otherwise. The credit debit itself is posted by the caller once
// the schedule row exists.
func chargeFunding(tx *gorm.DB, companyID int64, activity *domain.Activity, now time.Time) (domain.FundingSource, *int64, int64, error) {
	d, err := serviceorder.FindUsableDetail(tx, companyID, activity.Type, now)
	if err != nil {
		return "", nil, 0, err
	}
	if d != nil {
		ok, err := serviceorder.ConsumeAllowance(tx, d.ID)
		if err != nil {
			return "", nil, 0, err
		}
		if ok {
			detailID := d.ID
			return domain.FundingOrder, &detailID, 0, nil
		}
	}
	return domain.FundingCredit, nil, activity.CreditCost, nil
}

func refundFunding(tx *gorm.DB, sched *domain.Schedule) error {
	if sched.Funding == domain.FundingOrder && sched.OrderDetailID != nil {
		return serviceorder.ReleaseAllowance(tx, *sched.OrderDetailID)
	}
	if sched.CreditCost > 0 {
		_, err := credit.Apply(tx, sched.CompanyID, sched.CreditCost, domain.CreditRefund, &sched.ID, "booking cancelled")
		return err
	}
	return nil
}
