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

func newLifecycleService(t *testing.T) (*LifecycleService, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockCache, *mocks.MockNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewLifecycleService(eventRepo, userRepo, cache, notifier, log, 70)
	return svc, eventRepo, userRepo, cache, notifier
}

func validCreateEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		OrganizerID: "org1",
		Title:       "Sunday trek",
		Type:        domain.EventTypeUserCreated,
		StartsAt:    time.Now().Add(48 * time.Hour),
		Pricing:     domain.Pricing{IsFree: false, Price: 10000},
	}
}

func TestLifecycleService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, userRepo, _, _ := newLifecycleService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(&domain.User{ID: "org1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), validCreateEventInput())

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
	assert.Equal(t, "org1", event.OrganizerID)
	assert.NotEmpty(t, event.ID)
}

func TestLifecycleService_CreateEvent_MissingTitle(t *testing.T) {
	svc, _, _, _, _ := newLifecycleService(t)

	input := validCreateEventInput()
	input.Title = ""

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLifecycleService_CreateEvent_StartsInPast(t *testing.T) {
	svc, _, _, _, _ := newLifecycleService(t)

	input := validCreateEventInput()
	input.StartsAt = time.Now().Add(-time.Hour)

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLifecycleService_CreateEvent_PaidWithoutPrice(t *testing.T) {
	svc, _, _, _, _ := newLifecycleService(t)

	input := validCreateEventInput()
	input.Pricing = domain.Pricing{IsFree: false, Price: 0}

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLifecycleService_CreateEvent_InvalidAgeRange(t *testing.T) {
	svc, _, _, _, _ := newLifecycleService(t)

	input := validCreateEventInput()
	input.Eligibility.MinAge = 30
	input.Eligibility.MaxAge = 20

	_, err := svc.CreateEvent(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLifecycleService_CreateEvent_OrganizerNotFound(t *testing.T) {
	svc, _, userRepo, _, _ := newLifecycleService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.CreateEvent(context.Background(), validCreateEventInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLifecycleService_Publish_Success(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	eventRepo.EXPECT().UpdateStatus(mock.Anything, "e1", "org1",
		[]domain.EventStatus{domain.EventStatusDraft}, domain.EventStatusUpcoming).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	err := svc.Publish(context.Background(), "e1", "org1")

	require.NoError(t, err)
}

func TestLifecycleService_Publish_InvalidTransition(t *testing.T) {
	svc, eventRepo, _, _, _ := newLifecycleService(t)

	eventRepo.EXPECT().UpdateStatus(mock.Anything, "e1", "org1",
		[]domain.EventStatus{domain.EventStatusDraft}, domain.EventStatusUpcoming).
		Return(domain.ErrInvalidTransition)

	err := svc.Publish(context.Background(), "e1", "org1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestLifecycleService_Start_Success(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	eventRepo.EXPECT().UpdateStatus(mock.Anything, "e1", "org1",
		[]domain.EventStatus{domain.EventStatusUpcoming}, domain.EventStatusOngoing).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	err := svc.Start(context.Background(), "e1", "org1")

	require.NoError(t, err)
}

func TestLifecycleService_Complete_SponsoredEventNoCommission(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	completed := &domain.Event{ID: "e1", Status: domain.EventStatusCompleted, Type: domain.EventTypeOrganizerSponsored}

	eventRepo.EXPECT().Complete(mock.Anything, "e1", "org1", 70).Return(completed, nil, nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	event, err := svc.Complete(context.Background(), "e1", "org1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCompleted, event.Status)
}

func TestLifecycleService_Complete_PendingCommission(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	completed := &domain.Event{ID: "e1", Status: domain.EventStatusCompleted, Type: domain.EventTypeUserCreated}
	commission := &domain.Commission{
		ID:                 "c1",
		AdminID:            "org1",
		EventID:            "e1",
		Status:             domain.CommissionStatusPending,
		TotalDuesGenerated: 10000,
		AdminShare:         7000,
		PlatformShare:      3000,
	}

	eventRepo.EXPECT().Complete(mock.Anything, "e1", "org1", 70).Return(completed, commission, nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateFinance(mock.Anything, "org1").Return()

	_, err := svc.Complete(context.Background(), "e1", "org1")

	require.NoError(t, err)
}

// All dues were already cleared when the event completed, so the commission
// is born available and the organizer is notified right away.
func TestLifecycleService_Complete_AvailableCommissionNotifies(t *testing.T) {
	svc, eventRepo, userRepo, cache, notifier := newLifecycleService(t)

	completed := &domain.Event{ID: "e1", Status: domain.EventStatusCompleted, Type: domain.EventTypeUserCreated}
	commission := &domain.Commission{
		ID:      "c1",
		AdminID: "org1",
		EventID: "e1",
		Status:  domain.CommissionStatusAvailable,
	}
	organizer := &domain.User{ID: "org1"}

	eventRepo.EXPECT().Complete(mock.Anything, "e1", "org1", 70).Return(completed, commission, nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateFinance(mock.Anything, "org1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().NotifyCommissionAvailable(mock.Anything, organizer, commission).Return()

	_, err := svc.Complete(context.Background(), "e1", "org1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestLifecycleService_Complete_NotOrganizer(t *testing.T) {
	svc, eventRepo, _, _, _ := newLifecycleService(t)

	eventRepo.EXPECT().Complete(mock.Anything, "e1", "intruder", 70).Return(nil, nil, domain.ErrNotOrganizer)

	_, err := svc.Complete(context.Background(), "e1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestLifecycleService_Cancel_Success(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	eventRepo.EXPECT().Cancel(mock.Anything, "e1", "org1", "venue fell through").Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	err := svc.Cancel(context.Background(), "e1", "org1", "venue fell through")

	require.NoError(t, err)
}

func TestLifecycleService_Cancel_NotOrganizer(t *testing.T) {
	svc, eventRepo, _, _, _ := newLifecycleService(t)

	eventRepo.EXPECT().Cancel(mock.Anything, "e1", "u2", "changed my mind").
		Return(domain.ErrNotOrganizer)

	err := svc.Cancel(context.Background(), "e1", "u2", "changed my mind")

	require.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestLifecycleService_GetDetails_CacheHit(t *testing.T) {
	svc, _, _, cache, _ := newLifecycleService(t)

	cached := &domain.EventDetails{Event: domain.Event{ID: "e1"}}
	cache.EXPECT().GetEvent(mock.Anything, "e1").Return(cached, true)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, cached, details)
}

func TestLifecycleService_GetDetails_CacheMiss(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	details := &domain.EventDetails{Event: domain.Event{ID: "e1"}}
	cache.EXPECT().GetEvent(mock.Anything, "e1").Return(nil, false)
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)
	cache.EXPECT().SetEvent(mock.Anything, details).Return()

	got, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestLifecycleService_StartDueEvents_InvalidatesEach(t *testing.T) {
	svc, eventRepo, _, cache, _ := newLifecycleService(t)

	started := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	eventRepo.EXPECT().StartDue(mock.Anything).Return(started, nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateEvent(mock.Anything, "e2").Return()

	result, err := svc.StartDueEvents(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
