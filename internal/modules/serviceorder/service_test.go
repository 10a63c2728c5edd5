package serviceorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"joyit/internal/domain"
	"joyit/internal/modules/pricing"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) Activate(ctx context.Context, orderID int64, now time.Time) error {
	args := m.Called(ctx, orderID, now)
	return args.Error(0)
}

func (m *MockOrderRepository) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindUsableDetail(ctx context.Context, companyID int64, t domain.ActivityType, now time.Time) (*domain.ServiceOrderDetail, error) {
	args := m.Called(ctx, companyID, t, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrderDetail), args.Error(1)
}

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, p pricing.Params) (float64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(float64), args.Error(1)
}

func TestCreateOrderComputesAllowances(t *testing.T) {
	repo := new(MockOrderRepository)
	quoter := new(MockQuoter)
	svc := NewService(repo, quoter)

	quoter.On("Quote", mock.Anything, pricing.Params{
		Participants:       10,
		Months:             6,
		Snacking:           true,
		SnackingFrequency:  2,
		WellBeing:          true,
		WellBeingFrequency: 1,
	}).Return(10200.0, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ServiceOrder")).Return(nil)

	order, err := svc.Create(context.Background(), 42, CreateOrderRequest{
		Participants:   10,
		DurationMonths: 6,
		Details: []OrderDetailRequest{
			{ServiceType: "snacking", Frequency: 2},
			{ServiceType: "wellbeing", Frequency: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 10200.0, order.TotalCost)
	assert.Len(t, order.Details, 2)
	// frequency * duration months
	assert.Equal(t, 12, order.Details[0].AllowedBookings)
	assert.Equal(t, 6, order.Details[1].AllowedBookings)
	repo.AssertExpectations(t)
	quoter.AssertExpectations(t)
}

func TestCreateOrderRejectsUnknownServiceType(t *testing.T) {
	svc := NewService(new(MockOrderRepository), new(MockQuoter))

	_, err := svc.Create(context.Background(), 42, CreateOrderRequest{
		Participants:   10,
		DurationMonths: 6,
		Details:        []OrderDetailRequest{{ServiceType: "karaoke", Frequency: 1}},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderRejectsDuplicateServiceType(t *testing.T) {
	svc := NewService(new(MockOrderRepository), new(MockQuoter))

	_, err := svc.Create(context.Background(), 42, CreateOrderRequest{
		Participants:   10,
		DurationMonths: 6,
		Details: []OrderDetailRequest{
			{ServiceType: "snacking", Frequency: 2},
			{ServiceType: "snacking", Frequency: 3},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderPropagatesPricingValidation(t *testing.T) {
	repo := new(MockOrderRepository)
	quoter := new(MockQuoter)
	svc := NewService(repo, quoter)

	quoter.On("Quote", mock.Anything, mock.Anything).Return(0.0, pricing.ErrInvalidParams)

	_, err := svc.Create(context.Background(), 42, CreateOrderRequest{
		Participants:   1,
		DurationMonths: 1,
		Details:        []OrderDetailRequest{{ServiceType: "teambuilding", Frequency: 1}},
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockQuoter))

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.ServiceOrder{ID: 7, CompanyID: 1}, nil)

	_, err := svc.Get(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	order, err := svc.Get(context.Background(), 7, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
}

func TestConfirmPaymentActivatesOrder(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockQuoter))

	repo.On("Activate", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.ConfirmPayment(context.Background(), 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHasAllowance(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockQuoter))

	repo.On("FindUsableDetail", mock.Anything, int64(1), domain.ActivityWellbeing, mock.AnythingOfType("time.Time")).
		Return(&domain.ServiceOrderDetail{ID: 3, AllowedBookings: 4, BookingsUsed: 1}, nil)
	repo.On("FindUsableDetail", mock.Anything, int64(1), domain.ActivitySnacking, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	ok, err := svc.HasAllowance(context.Background(), 1, domain.ActivityWellbeing)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasAllowance(context.Background(), 1, domain.ActivitySnacking)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.HasAllowance(context.Background(), 1, domain.ActivityType("karaoke"))
	assert.ErrorIs(t, err, ErrValidation)
}
