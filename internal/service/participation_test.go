package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newParticipationService(t *testing.T) (*ParticipationService, *mocks.MockParticipantRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockCache, *mocks.MockNotifier) {
	t.Helper()
	participantRepo := mocks.NewMockParticipantRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewParticipationService(participantRepo, eventRepo, userRepo, cache, notifier, log, time.Hour)
	return svc, participantRepo, eventRepo, userRepo, cache, notifier
}

func upcomingPaidEvent() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		OrganizerID: "org1",
		Title:       "Board games night",
		Type:        domain.EventTypeUserCreated,
		Status:      domain.EventStatusUpcoming,
		Pricing:     domain.Pricing{IsFree: false, Price: 5000},
	}
}

func TestParticipationService_RequestToJoin_AutoApproved(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	user := &domain.User{ID: "u1", Username: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	participantRepo.EXPECT().Join(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	notifier.EXPECT().NotifyJoinApproved(mock.Anything, user, event).Return()

	p, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusApproved, p.Status)
	assert.Equal(t, "e1", p.EventID)
	assert.Equal(t, "u1", p.UserID)
	assert.NotEmpty(t, p.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestParticipationService_RequestToJoin_Waitlisted(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Eligibility.RequiresApproval = true
	user := &domain.User{ID: "u1", Username: "alice"}
	organizer := &domain.User{ID: "org1", Username: "bob"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	participantRepo.EXPECT().Join(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().NotifyJoinRequested(mock.Anything, organizer, user, event).Return()

	p, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusPendingApproval, p.Status)

	time.Sleep(50 * time.Millisecond)
}

// Waitlisted joins never carry a due; the due appears only on approval.
func TestParticipationService_RequestToJoin_NoDueForWaitlisted(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Eligibility.RequiresApproval = true
	user := &domain.User{ID: "u1"}
	organizer := &domain.User{ID: "org1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	participantRepo.EXPECT().Join(mock.Anything, mock.Anything, (*domain.Due)(nil)).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().NotifyJoinRequested(mock.Anything, organizer, user, event).Return()

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_RequestToJoin_EventNotUpcoming(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Status = domain.EventStatusOngoing

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotJoinable)
}

func TestParticipationService_RequestToJoin_OrganizerCannotJoin(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(&domain.User{ID: "org1"}, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "org1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrganizerCannotJoin)
}

func TestParticipationService_RequestToJoin_NotEligible(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Eligibility.Genders = []string{"female"}
	male := "male"

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Gender: &male}, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestParticipationService_RequestToJoin_EventFull(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Eligibility.MemberLimit = 10
	event.ParticipantCount = 10

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestParticipationService_RequestToJoin_DuesPendingBlocksPaidEvent(t *testing.T) {
	svc, _, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()
	user := &domain.User{ID: "u1", Finance: domain.Finance{Dues: 3000}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuesPending)
}

// Outstanding dues do not block free events.
func TestParticipationService_RequestToJoin_DuesPendingAllowsFreeEvent(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Pricing = domain.Pricing{IsFree: true}
	user := &domain.User{ID: "u1", Finance: domain.Finance{Dues: 3000}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	participantRepo.EXPECT().Join(mock.Anything, mock.Anything, (*domain.Due)(nil)).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	notifier.EXPECT().NotifyJoinApproved(mock.Anything, user, event).Return()

	p, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusApproved, p.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_RequestToJoin_AlreadyJoined(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, _, _ := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Pricing = domain.Pricing{IsFree: true}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	participantRepo.EXPECT().Join(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrAlreadyJoined)

	_, err := svc.RequestToJoin(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
}

func TestParticipationService_ApproveJoinRequest_GeneratesDue(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	participantRepo.EXPECT().Approve(mock.Anything, "e1", "u1", mock.MatchedBy(func(due *domain.Due) bool {
		return due != nil && due.Amount == 5000 && due.Status == domain.DueStatusPending
	})).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyJoinApproved(mock.Anything, user, event).Return()

	err := svc.ApproveJoinRequest(context.Background(), "e1", "org1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

// Organizer-sponsored events never bill participants.
func TestParticipationService_ApproveJoinRequest_SponsoredEventNoDue(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	event.Type = domain.EventTypeOrganizerSponsored
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	participantRepo.EXPECT().Approve(mock.Anything, "e1", "u1", (*domain.Due)(nil)).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyJoinApproved(mock.Anything, user, event).Return()

	err := svc.ApproveJoinRequest(context.Background(), "e1", "org1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_ApproveJoinRequest_NotOrganizer(t *testing.T) {
	svc, _, eventRepo, _, _, _ := newParticipationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingPaidEvent(), nil)

	err := svc.ApproveJoinRequest(context.Background(), "e1", "intruder", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestParticipationService_ApproveJoinRequest_NotPending(t *testing.T) {
	svc, participantRepo, eventRepo, _, _, _ := newParticipationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingPaidEvent(), nil)
	participantRepo.EXPECT().Approve(mock.Anything, "e1", "u1", mock.Anything).Return(domain.ErrParticipantNotPending)

	err := svc.ApproveJoinRequest(context.Background(), "e1", "org1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantNotPending)
}

func TestParticipationService_RejectJoinRequest_Success(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	participantRepo.EXPECT().Reject(mock.Anything, "e1", "u1", "too many friends already").Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyJoinRejected(mock.Anything, user, event, "too many friends already").Return()

	err := svc.RejectJoinRequest(context.Background(), "e1", "org1", "u1", "too many friends already")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_RequestToLeave_Success(t *testing.T) {
	svc, participantRepo, _, _, cache, _ := newParticipationService(t)

	participantRepo.EXPECT().RequestLeave(mock.Anything, "e1", "u1", time.Hour).Return(nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()

	err := svc.RequestToLeave(context.Background(), "e1", "u1")

	require.NoError(t, err)
}

func TestParticipationService_RequestToLeave_WindowExpired(t *testing.T) {
	svc, participantRepo, _, _, _, _ := newParticipationService(t)

	participantRepo.EXPECT().RequestLeave(mock.Anything, "e1", "u1", time.Hour).Return(domain.ErrLeaveWindowExpired)

	err := svc.RequestToLeave(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLeaveWindowExpired)
}

func TestParticipationService_ApproveLeaveRequest_WritesOffDue(t *testing.T) {
	svc, participantRepo, eventRepo, userRepo, cache, notifier := newParticipationService(t)

	event := upcomingPaidEvent()
	user := &domain.User{ID: "u1"}
	writtenOff := &domain.Due{ID: "d1", UserID: "u1", EventID: "e1", Amount: 5000}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	participantRepo.EXPECT().ApproveLeave(mock.Anything, "e1", "u1").Return(writtenOff, nil)
	cache.EXPECT().InvalidateEvent(mock.Anything, "e1").Return()
	cache.EXPECT().InvalidateFinance(mock.Anything, "u1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyLeaveApproved(mock.Anything, user, event).Return()

	err := svc.ApproveLeaveRequest(context.Background(), "e1", "org1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestParticipationService_ApproveLeaveRequest_LeaveNotRequested(t *testing.T) {
	svc, participantRepo, eventRepo, _, _, _ := newParticipationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingPaidEvent(), nil)
	participantRepo.EXPECT().ApproveLeave(mock.Anything, "e1", "u1").Return(nil, domain.ErrLeaveNotRequested)

	err := svc.ApproveLeaveRequest(context.Background(), "e1", "org1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLeaveNotRequested)
}
