package serviceorder

import (
	"context"
	"time"

	"joyit/internal/domain"
	"joyit/internal/modules/pricing"
)

// OrderRepository lists only the methods the order service uses.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
	ListByCompany(ctx context.Context, companyID int64) ([]domain.ServiceOrder, error)
	Activate(ctx context.Context, orderID int64, now time.Time) error
	ExpirePast(ctx context.Context, now time.Time) (int64, error)
	FindUsableDetail(ctx context.Context, companyID int64, t domain.ActivityType, now time.Time) (*domain.ServiceOrderDetail, error)
}

// Quoter prices an order request. Implemented by the pricing service.
type Quoter interface {
	Quote(ctx context.Context, p pricing.Params) (float64, error)
}
