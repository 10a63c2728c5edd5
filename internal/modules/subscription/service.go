package subscription

import (
	"context"
	"time"

	"joyit/internal/domain"
	"joyit/internal/repository"
)

type Service struct {
	subs  Repository
	plans PlanReader
}

func NewService(subs Repository, plans PlanReader) *Service {
	return &Service{subs: subs, plans: plans}
}

type SubscribeRequest struct {
	PlanID int64 `json:"plan_id" binding:"required"`
	Months int   `json:"months"`
}

// Subscribe puts the company on a plan. An existing active subscription is
// cancelled first so at most one stays active.
func (s *Service) Subscribe(ctx context.Context, companyID int64, req SubscribeRequest) (*domain.Subscription, error) {
	months := req.Months
	if months == 0 {
		months = 12
	}
	if months < 1 {
		return nil, ErrInvalidDuration
	}

	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	existing, err := s.subs.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.subs.Cancel(ctx, existing.ID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	sub := &domain.Subscription{
		CompanyID: companyID,
		PlanID:    plan.ID,
		Status:    domain.SubscriptionActive,
		StartDate: now,
		EndDate:   now.AddDate(0, months, 0),
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	sub.Plan = plan
	return sub, nil
}

// Current returns the company's active subscription with its plan and
// activities.
func (s *Service) Current(ctx context.Context, companyID int64) (*domain.Subscription, error) {
	sub, err := s.subs.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.IsExpired() {
		return nil, ErrNoSubscription
	}
	return sub, nil
}
