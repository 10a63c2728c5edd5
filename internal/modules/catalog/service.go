package catalog

import (
	"context"

	"joyit/internal/domain"
	"joyit/internal/pkg/validator"
	"joyit/internal/repository"
)

type Service struct {
	activities ActivityRepository
	plans      PlanRepository
}

func NewService(activities ActivityRepository, plans PlanRepository) *Service {
	return &Service{activities: activities, plans: plans}
}

func (s *Service) CreateActivity(ctx context.Context, req CreateActivityRequest) (*domain.Activity, error) {
	t := domain.ActivityType(req.Type)
	if !t.Valid() {
		return nil, ErrValidation
	}

	a := &domain.Activity{
		Name:        req.Name,
		Description: req.Description,
		Type:        t,
		CreditCost:  req.CreditCost,
		IsActive:    true,
	}
	if errs := validator.Validate(a); errs != nil {
		return nil, ErrValidation
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateActivity(ctx context.Context, id int64, req UpdateActivityRequest) (*domain.Activity, error) {
	t := domain.ActivityType(req.Type)
	if !t.Valid() {
		return nil, ErrValidation
	}

	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Name = req.Name
	a.Description = req.Description
	a.Type = t
	a.CreditCost = req.CreditCost
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx, true)
}

func (s *Service) GetActivity(ctx context.Context, id int64) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// CreatePlan bundles existing activities into a plan. Every referenced
// activity must exist.
func (s *Service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.Plan, error) {
	activities := make([]domain.Activity, 0, len(req.ActivityIDs))
	for _, id := range req.ActivityIDs {
		a, err := s.activities.GetByID(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		activities = append(activities, *a)
	}

	p := &domain.Plan{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		Activities:  activities,
	}
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.plans.List(ctx, true)
}

func (s *Service) GetPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
