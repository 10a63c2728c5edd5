package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"joyit/internal/domain"
)

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Create(ctx context.Context, s *domain.Subscription) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 55 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockSubscriptionRepo) GetActiveByCompanyID(ctx context.Context, companyID int64) (*domain.Subscription, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) Cancel(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockPlanReader struct {
	mock.Mock
}

func (m *MockPlanReader) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func TestSubscribeDefaultsToTwelveMonths(t *testing.T) {
	subs := new(MockSubscriptionRepo)
	plans := new(MockPlanReader)
	svc := NewService(subs, plans)

	plans.On("GetByID", mock.Anything, int64(3)).Return(&domain.Plan{ID: 3, Name: "Full Office"}, nil)
	subs.On("GetActiveByCompanyID", mock.Anything, int64(1)).Return(nil, nil)
	subs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Subscription")).Return(nil)

	sub, err := svc.Subscribe(context.Background(), 1, SubscribeRequest{PlanID: 3})

	assert.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, sub.Status)
	assert.Equal(t, int64(3), sub.PlanID)
	months := sub.EndDate.Sub(sub.StartDate).Hours() / 24
	assert.InDelta(t, 365, months, 2)
	subs.AssertExpectations(t)
}

func TestSubscribeCancelsExistingActive(t *testing.T) {
	subs := new(MockSubscriptionRepo)
	plans := new(MockPlanReader)
	svc := NewService(subs, plans)

	plans.On("GetByID", mock.Anything, int64(3)).Return(&domain.Plan{ID: 3}, nil)
	subs.On("GetActiveByCompanyID", mock.Anything, int64(1)).Return(&domain.Subscription{ID: 10, CompanyID: 1}, nil)
	subs.On("Cancel", mock.Anything, int64(10)).Return(nil)
	subs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Subscription")).Return(nil)

	_, err := svc.Subscribe(context.Background(), 1, SubscribeRequest{PlanID: 3, Months: 6})

	assert.NoError(t, err)
	subs.AssertCalled(t, "Cancel", mock.Anything, int64(10))
}

func TestSubscribeUnknownPlan(t *testing.T) {
	subs := new(MockSubscriptionRepo)
	plans := new(MockPlanReader)
	svc := NewService(subs, plans)

	plans.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Subscribe(context.Background(), 1, SubscribeRequest{PlanID: 99})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubscribeRejectsNegativeDuration(t *testing.T) {
	svc := NewService(new(MockSubscriptionRepo), new(MockPlanReader))

	_, err := svc.Subscribe(context.Background(), 1, SubscribeRequest{PlanID: 3, Months: -2})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestCurrentWithoutSubscription(t *testing.T) {
	subs := new(MockSubscriptionRepo)
	svc := NewService(subs, new(MockPlanReader))

	subs.On("GetActiveByCompanyID", mock.Anything, int64(1)).Return(nil, nil)

	_, err := svc.Current(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoSubscription)
}

func TestCurrentExpiredSubscription(t *testing.T) {
	subs := new(MockSubscriptionRepo)
	svc := NewService(subs, new(MockPlanReader))

	expired := &domain.Subscription{
		ID:        7,
		Status:    domain.SubscriptionActive,
		StartDate: time.Now().AddDate(-2, 0, 0),
		EndDate:   time.Now().AddDate(-1, 0, 0),
	}
	subs.On("GetActiveByCompanyID", mock.Anything, int64(1)).Return(expired, nil)

	_, err := svc.Current(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoSubscription)
}
