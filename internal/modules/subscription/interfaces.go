package subscription

import (
	"context"
	"time"

	"joyit/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s *domain.Subscription) error
	GetActiveByCompanyID(ctx context.Context, companyID int64) (*domain.Subscription, error)
	Cancel(ctx context.Context, id int64) error
	ExpirePast(ctx context.Context, now time.Time) (int64, error)
}

type PlanReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}
