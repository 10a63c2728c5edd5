package serviceorder

import (
	"context"
	"time"

	"joyit/internal/domain"
	"joyit/internal/modules/pricing"
	"joyit/internal/repository"
)

type Service struct {
	orders OrderRepository
	quoter Quoter
}

func NewService(orders OrderRepository, quoter Quoter) *Service {
	return &Service{orders: orders, quoter: quoter}
}

// Create prices the requested bundle and persists the order as PENDING.
// Per-detail allowance is frequency bookings per month over the whole
// duration.
func (s *Service) Create(ctx context.Context, companyID int64, req CreateOrderRequest) (*domain.ServiceOrder, error) {
	params := pricing.Params{
		Participants: req.Participants,
		Months:       req.DurationMonths,
	}

	details := make([]domain.ServiceOrderDetail, 0, len(req.Details))
	seen := make(map[domain.ActivityType]bool, len(req.Details))
	for _, d := range req.Details {
		t := domain.ActivityType(d.ServiceType)
		if !t.Valid() || seen[t] {
			return nil, ErrValidation
		}
		seen[t] = true

		switch t {
		case domain.ActivitySnacking:
			params.Snacking = true
			params.SnackingFrequency = d.Frequency
		case domain.ActivityTeambuilding:
			params.Teambuilding = true
		case domain.ActivityWellbeing:
			params.WellBeing = true
			params.WellBeingFrequency = d.Frequency
		}

		details = append(details, domain.ServiceOrderDetail{
			ServiceType:     t,
			Frequency:       d.Frequency,
			AllowedBookings: d.Frequency * req.DurationMonths,
		})
	}

	total, err := s.quoter.Quote(ctx, params)
	if err != nil {
		if err == pricing.ErrInvalidParams {
			return nil, ErrValidation
		}
		return nil, err
	}

	order := &domain.ServiceOrder{
		CompanyID:      companyID,
		Participants:   req.Participants,
		DurationMonths: req.DurationMonths,
		TotalCost:      total,
		Status:         domain.OrderPending,
		Details:        details,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id, companyID int64) (*domain.ServiceOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.CompanyID != companyID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]domain.ServiceOrder, error) {
	return s.orders.ListByCompany(ctx, companyID)
}

// ConfirmPayment activates the order after the gateway reports a successful
// checkout. Called from the payment webhook flow, never by the order owner.
func (s *Service) ConfirmPayment(ctx context.Context, orderID int64) error {
	if err := s.orders.Activate(ctx, orderID, time.Now()); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// HasAllowance reports whether the company currently holds a usable
// allowance for the given activity type.
func (s *Service) HasAllowance(ctx context.Context, companyID int64, t domain.ActivityType) (bool, error) {
	if !t.Valid() {
		return false, ErrValidation
	}
	d, err := s.orders.FindUsableDetail(ctx, companyID, t, time.Now())
	if err != nil {
		return false, err
	}
	return d != nil, nil
}

// ExpirePast closes active orders whose validity window has passed.
func (s *Service) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	return s.orders.ExpirePast(ctx, now)
}
