package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports/mocks"
)

func newCommissionService(t *testing.T) (*CommissionService, *mocks.MockCommissionRepo, *mocks.MockUserRepo, *mocks.MockCache, *mocks.MockNotifier) {
	t.Helper()
	commissionRepo := mocks.NewMockCommissionRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewCommissionService(commissionRepo, userRepo, cache, notifier, log, 5000)
	return svc, commissionRepo, userRepo, cache, notifier
}

// Clearing a due on an event without a pending commission is a no-op.
func TestCommissionService_OnDueCleared_NoCommission(t *testing.T) {
	svc, commissionRepo, _, _, _ := newCommissionService(t)

	commissionRepo.EXPECT().IncrementCleared(mock.Anything, "e1").Return(nil, false, nil)

	err := svc.OnDueCleared(context.Background(), "e1")

	require.NoError(t, err)
}

func TestCommissionService_OnDueCleared_CounterAdvances(t *testing.T) {
	svc, commissionRepo, _, _, _ := newCommissionService(t)

	commission := &domain.Commission{
		ID:                     "c1",
		AdminID:                "org1",
		EventID:                "e1",
		Status:                 domain.CommissionStatusPending,
		ParticipantsCount:      5,
		ParticipantsDueCleared: 3,
	}
	commissionRepo.EXPECT().IncrementCleared(mock.Anything, "e1").Return(commission, false, nil)

	err := svc.OnDueCleared(context.Background(), "e1")

	require.NoError(t, err)
}

func TestCommissionService_OnDueCleared_LastDuePromotes(t *testing.T) {
	svc, commissionRepo, userRepo, cache, notifier := newCommissionService(t)

	commission := &domain.Commission{
		ID:                     "c1",
		AdminID:                "org1",
		EventID:                "e1",
		Status:                 domain.CommissionStatusAvailable,
		AdminShare:             7000,
		ParticipantsCount:      5,
		ParticipantsDueCleared: 5,
	}
	organizer := &domain.User{ID: "org1"}

	commissionRepo.EXPECT().IncrementCleared(mock.Anything, "e1").Return(commission, true, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "org1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().NotifyCommissionAvailable(mock.Anything, organizer, commission).Return()

	err := svc.OnDueCleared(context.Background(), "e1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// A missing organizer only costs the notification, not the settlement.
func TestCommissionService_OnDueCleared_PromotedOrganizerLookupFails(t *testing.T) {
	svc, commissionRepo, userRepo, cache, _ := newCommissionService(t)

	commission := &domain.Commission{ID: "c1", AdminID: "org1", Status: domain.CommissionStatusAvailable}

	commissionRepo.EXPECT().IncrementCleared(mock.Anything, "e1").Return(commission, true, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "org1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(nil, domain.ErrUserNotFound)

	err := svc.OnDueCleared(context.Background(), "e1")

	require.NoError(t, err)
}

func TestCommissionService_GetFinanceSummary_CacheHit(t *testing.T) {
	svc, _, _, cache, _ := newCommissionService(t)

	finance := &domain.Finance{AvailableCommission: 7000}
	cache.EXPECT().GetFinance(mock.Anything, "u1").Return(finance, true)

	got, err := svc.GetFinanceSummary(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, finance, got)
}

func TestCommissionService_GetFinanceSummary_CacheMiss(t *testing.T) {
	svc, _, userRepo, cache, _ := newCommissionService(t)

	finance := &domain.Finance{Dues: 5000, PendingCommission: 7000}
	cache.EXPECT().GetFinance(mock.Anything, "u1").Return(nil, false)
	userRepo.EXPECT().GetFinance(mock.Anything, "u1").Return(finance, nil)
	cache.EXPECT().SetFinance(mock.Anything, "u1", finance).Return()

	got, err := svc.GetFinanceSummary(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, finance, got)
}

func TestCommissionService_Withdraw_Success(t *testing.T) {
	svc, commissionRepo, _, cache, _ := newCommissionService(t)

	finance := &domain.Finance{AvailableCommission: 2000, TotalWithdrawn: 5000}
	commissionRepo.EXPECT().Withdraw(mock.Anything, "u1", int64(5000), int64(5000)).Return(finance, nil)
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()

	got, err := svc.Withdraw(context.Background(), "u1", 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(2000), got.AvailableCommission)
}

func TestCommissionService_Withdraw_BelowMinimum(t *testing.T) {
	svc, commissionRepo, _, _, _ := newCommissionService(t)

	commissionRepo.EXPECT().Withdraw(mock.Anything, "u1", int64(100), int64(5000)).
		Return(nil, domain.ErrBelowMinWithdrawal)

	_, err := svc.Withdraw(context.Background(), "u1", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBelowMinWithdrawal)
}

func TestCommissionService_Withdraw_Insufficient(t *testing.T) {
	svc, commissionRepo, _, _, _ := newCommissionService(t)

	commissionRepo.EXPECT().Withdraw(mock.Anything, "u1", int64(9000), int64(5000)).
		Return(nil, domain.ErrInsufficientCommission)

	_, err := svc.Withdraw(context.Background(), "u1", 9000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCommission)
}
