package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	svcmocks "github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/mocks"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports/mocks"
)

func newDuesService(t *testing.T) (*DuesService, *mocks.MockDueRepo, *mocks.MockUserRepo, *mocks.MockEventRepo, *svcmocks.MockSettlementEngine, *mocks.MockCache) {
	t.Helper()
	dueRepo := mocks.NewMockDueRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	settlement := svcmocks.NewMockSettlementEngine(t)
	cache := mocks.NewMockCache(t)
	log := newTestLogger(t)

	svc := NewDuesService(dueRepo, userRepo, eventRepo, settlement, cache, log, 2, 18)
	return svc, dueRepo, userRepo, eventRepo, settlement, cache
}

func TestDuesService_CreateDue_Success(t *testing.T) {
	svc, dueRepo, userRepo, eventRepo, _, cache := newDuesService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	dueRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d *domain.Due) bool {
		return d.UserID == "u1" && d.EventID == "e1" && d.Amount == 5000 && d.Status == domain.DueStatusPending
	})).Return(nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	due, err := svc.CreateDue(context.Background(), "u1", "e1", 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), due.Amount)
	assert.NotEmpty(t, due.ID)
}

func TestDuesService_CreateDue_NonPositiveAmount(t *testing.T) {
	svc, _, _, _, _, _ := newDuesService(t)

	_, err := svc.CreateDue(context.Background(), "u1", "e1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDuesService_CreateDue_Duplicate(t *testing.T) {
	svc, dueRepo, userRepo, eventRepo, _, _ := newDuesService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	dueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDueExists)

	_, err := svc.CreateDue(context.Background(), "u1", "e1", 5000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDueExists)
}

func TestDuesService_ClearDue_Success(t *testing.T) {
	svc, dueRepo, _, _, settlement, cache := newDuesService(t)

	cleared := &domain.Due{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000, Status: domain.DueStatusCleared}

	dueRepo.EXPECT().Clear(mock.Anything, "d1", domain.ClearedViaPayment, "pay_1").Return(cleared, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	settlement.EXPECT().OnDueCleared(mock.Anything, "e1").Return(nil)

	due, err := svc.ClearDue(context.Background(), "d1", domain.ClearedViaPayment, "pay_1")

	require.NoError(t, err)
	assert.Equal(t, domain.DueStatusCleared, due.Status)
}

func TestDuesService_ClearDue_AlreadyCleared(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	dueRepo.EXPECT().Clear(mock.Anything, "d1", domain.ClearedViaPayment, "pay_1").
		Return(nil, domain.ErrDueAlreadyCleared)

	_, err := svc.ClearDue(context.Background(), "d1", domain.ClearedViaPayment, "pay_1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDueAlreadyCleared)
}

// The due stays cleared even when the settlement counter fails to advance;
// the error surfaces so the caller can retry settlement.
func TestDuesService_ClearDue_SettlementErrorStillReturnsDue(t *testing.T) {
	svc, dueRepo, _, _, settlement, cache := newDuesService(t)

	cleared := &domain.Due{ID: "d1", UserID: "u1", EventID: "e1", Status: domain.DueStatusCleared}

	dueRepo.EXPECT().Clear(mock.Anything, "d1", domain.ClearedViaPayment, "pay_1").Return(cleared, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	settlement.EXPECT().OnDueCleared(mock.Anything, "e1").Return(assert.AnError)

	due, err := svc.ClearDue(context.Background(), "d1", domain.ClearedViaPayment, "pay_1")

	require.Error(t, err)
	assert.NotNil(t, due)
}

func TestDuesService_ClearMany_SkipsSettled(t *testing.T) {
	svc, dueRepo, _, _, settlement, cache := newDuesService(t)

	cleared := []*domain.Due{
		{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000},
		{ID: "d2", UserID: "u1", EventID: "e2", Amount: 3000},
	}

	dueRepo.EXPECT().ClearMany(mock.Anything, []string{"d1", "d2", "d3"}, domain.ClearedViaPayment, "pay_1").
		Return(cleared, 1, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e2").Return()
	settlement.EXPECT().OnDueCleared(mock.Anything, "e1").Return(nil)
	settlement.EXPECT().OnDueCleared(mock.Anything, "e2").Return(nil)

	result, skipped, err := svc.ClearMany(context.Background(), []string{"d1", "d2", "d3"}, domain.ClearedViaPayment, "pay_1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 1, skipped)
}

func TestDuesService_ClearDuesWithCommission_Success(t *testing.T) {
	svc, dueRepo, _, _, settlement, cache := newDuesService(t)

	cleared := []*domain.Due{{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000}}

	dueRepo.EXPECT().ClearManyWithCommission(mock.Anything, "u1", []string{"d1"}).Return(cleared, 0, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	settlement.EXPECT().OnDueCleared(mock.Anything, "e1").Return(nil)

	result, skipped, err := svc.ClearDuesWithCommission(context.Background(), "u1", []string{"d1"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 0, skipped)
}

func TestDuesService_ClearDuesWithCommission_InsufficientBalance(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	dueRepo.EXPECT().ClearManyWithCommission(mock.Anything, "u1", []string{"d1"}).
		Return(nil, 0, domain.ErrInsufficientCommission)

	_, _, err := svc.ClearDuesWithCommission(context.Background(), "u1", []string{"d1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCommission)
}

func TestDuesService_CreatePaymentOrder_FeeMath(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	pending := []*domain.Due{
		{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000},
		{ID: "d2", UserID: "u1", EventID: "e2", Amount: 4999},
	}

	dueRepo.EXPECT().ListPendingByUser(mock.Anything, "u1").Return(pending, nil)
	dueRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)

	order, err := svc.CreatePaymentOrder(context.Background(), "u1", []string{"d1", "d2"}, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(9999), order.Amount)
	// 2% gateway fee of 9999 floors to 199, 18% GST on the fee floors to 35,
	// 10% discount on 9999 floors to 999.
	assert.Equal(t, int64(199), order.GatewayFee)
	assert.Equal(t, int64(35), order.GST)
	assert.Equal(t, int64(999), order.Discount)
	assert.Equal(t, int64(9999+199+35-999), order.Payable)
	assert.Equal(t, domain.PaymentOrderStatusCreated, order.Status)
	assert.NotEmpty(t, order.GatewayOrderID)
}

// Requested ids that are not pending for this user are dropped from the
// order instead of failing it.
func TestDuesService_CreatePaymentOrder_FiltersForeignDues(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	pending := []*domain.Due{{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000}}

	dueRepo.EXPECT().ListPendingByUser(mock.Anything, "u1").Return(pending, nil)
	dueRepo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o *domain.PaymentOrder) bool {
		return len(o.DueIDs) == 1 && o.DueIDs[0] == "d1"
	})).Return(nil)

	order, err := svc.CreatePaymentOrder(context.Background(), "u1", []string{"d1", "not-mine"}, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), order.Amount)
}

func TestDuesService_CreatePaymentOrder_NothingToPay(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	dueRepo.EXPECT().ListPendingByUser(mock.Anything, "u1").Return(nil, nil)

	_, err := svc.CreatePaymentOrder(context.Background(), "u1", []string{"d1"}, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDuesService_HandleGatewayCallback_Success(t *testing.T) {
	svc, dueRepo, _, _, settlement, cache := newDuesService(t)

	order := &domain.PaymentOrder{
		ID:             "o1",
		GatewayOrderID: "order_abc",
		UserID:         "u1",
		DueIDs:         []string{"d1"},
		Status:         domain.PaymentOrderStatusCreated,
	}
	cleared := []*domain.Due{{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000}}

	dueRepo.EXPECT().GetOrderByGatewayID(mock.Anything, "order_abc").Return(order, nil)
	dueRepo.EXPECT().ClearMany(mock.Anything, []string{"d1"}, domain.ClearedViaPayment, "pay_1").
		Return(cleared, 0, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	settlement.EXPECT().OnDueCleared(mock.Anything, "e1").Return(nil)
	dueRepo.EXPECT().MarkOrder(mock.Anything, "o1", domain.PaymentOrderStatusPaid, "pay_1").Return(nil)

	err := svc.HandleGatewayCallback(context.Background(), "order_abc", "pay_1", true)

	require.NoError(t, err)
}

func TestDuesService_HandleGatewayCallback_Failed(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	order := &domain.PaymentOrder{
		ID:             "o1",
		GatewayOrderID: "order_abc",
		UserID:         "u1",
		DueIDs:         []string{"d1"},
		Status:         domain.PaymentOrderStatusCreated,
	}

	dueRepo.EXPECT().GetOrderByGatewayID(mock.Anything, "order_abc").Return(order, nil)
	dueRepo.EXPECT().MarkOrder(mock.Anything, "o1", domain.PaymentOrderStatusFailed, "pay_1").Return(nil)

	err := svc.HandleGatewayCallback(context.Background(), "order_abc", "pay_1", false)

	require.NoError(t, err)
}

// Replayed callbacks must not double-clear dues.
func TestDuesService_HandleGatewayCallback_AlreadyProcessed(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	order := &domain.PaymentOrder{
		ID:     "o1",
		Status: domain.PaymentOrderStatusPaid,
	}

	dueRepo.EXPECT().GetOrderByGatewayID(mock.Anything, "order_abc").Return(order, nil)

	err := svc.HandleGatewayCallback(context.Background(), "order_abc", "pay_1", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestDuesService_HandleGatewayCallback_UnknownOrder(t *testing.T) {
	svc, dueRepo, _, _, _, _ := newDuesService(t)

	dueRepo.EXPECT().GetOrderByGatewayID(mock.Anything, "order_missing").
		Return(nil, domain.ErrPaymentOrderNotFound)

	err := svc.HandleGatewayCallback(context.Background(), "order_missing", "pay_1", true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentOrderNotFound)
}
