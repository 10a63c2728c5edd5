package payment

import (
	"context"
	"time"

	"joyit/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByInvID(ctx context.Context, invID int64) (*domain.Payment, error)
	MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error
	MarkPaidIdempotent(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error)
}

// orderConfirmer activates a service order once its checkout is paid.
type orderConfirmer interface {
	ConfirmPayment(ctx context.Context, orderID int64) error
}

// creditGranter applies a paid credit top-up to the company ledger.
type creditGranter interface {
	ApplyTopUp(ctx context.Context, companyID, amount int64, note string) error
}
