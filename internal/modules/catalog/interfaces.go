package catalog

import (
	"context"

	"joyit/internal/domain"
)

// ActivityRepository lists only the methods the catalog service uses.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.Activity) error
	Update(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Activity, error)
}

type PlanRepository interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	List(ctx context.Context, onlyActive bool) ([]domain.Plan, error)
	ReplaceActivities(ctx context.Context, planID int64, activities []domain.Activity) error
}
