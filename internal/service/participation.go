package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/eligibility"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultLeaveWindow = 60 * time.Minute

type ParticipationService struct {
	participantRepo ports.ParticipantRepo
	eventRepo       ports.EventRepo
	userRepo        ports.UserRepo
	cache           ports.Cache
	notifier        ports.Notifier
	logger          logger.Logger
	leaveWindow     time.Duration
}

func NewParticipationService(
	participantRepo ports.ParticipantRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	cache ports.Cache,
	notifier ports.Notifier,
	logger logger.Logger,
	leaveWindow time.Duration,
) *ParticipationService {
	if leaveWindow <= 0 {
		leaveWindow = DefaultLeaveWindow
	}
	return &ParticipationService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
		leaveWindow:     leaveWindow,
	}
}

// RequestToJoin runs the eligibility rules and appends the user to the
// roster: straight to approved when the event needs no approval, onto the
// waitlist otherwise. A due is generated in the same transaction when the
// join is auto-approved on a paid user-created event.
func (s *ParticipationService) RequestToJoin(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if event.Status != domain.EventStatusUpcoming {
		return nil, domain.ErrEventNotJoinable
	}
	if event.OrganizerID == userID {
		return nil, domain.ErrOrganizerCannotJoin
	}

	res := eligibility.Evaluate(event.Eligibility, event.Location, eligibility.Candidate{
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
		Location:    user.Location,
	}, event.ParticipantCount, time.Now().UTC())
	if !res.Eligible {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotEligible, res.Reason)
	}

	// One outstanding-dues rule: pending dues anywhere block joining any
	// new paid event, not just this one.
	if !event.Pricing.IsFree && user.Finance.Dues > 0 {
		return nil, domain.ErrDuesPending
	}

	now := time.Now().UTC()
	p := &domain.Participant{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    domain.ParticipantStatusApproved,
		JoinedAt:  now,
		UpdatedAt: now,
	}
	if event.Eligibility.RequiresApproval {
		p.Status = domain.ParticipantStatusPendingApproval
	}

	var due *domain.Due
	if p.Status == domain.ParticipantStatusApproved && dueRequired(event) {
		due = newDue(userID, eventID, event.Pricing.Price, now)
	}

	if err = s.participantRepo.Join(ctx, p, due); err != nil {
		return nil, fmt.Errorf("join event: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)
	if due != nil {
		s.cache.InvalidateFinance(ctx, userID)
	}

	s.logger.Info("join request processed",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("status", string(p.Status)),
	)

	if p.Status == domain.ParticipantStatusPendingApproval {
		organizer, orgErr := s.userRepo.GetByID(ctx, event.OrganizerID)
		if orgErr != nil {
			s.logger.Error("failed to get organizer for notification",
				logger.String("user_id", event.OrganizerID),
				logger.String("error", orgErr.Error()),
			)
			return p, nil
		}
		go s.notifier.NotifyJoinRequested(context.WithoutCancel(ctx), organizer, user, event)
	} else {
		go s.notifier.NotifyJoinApproved(context.WithoutCancel(ctx), user, event)
	}

	return p, nil
}

// ApproveJoinRequest moves a waitlisted participant to approved, generating
// the due for paid user-created events in the same transaction.
func (s *ParticipationService) ApproveJoinRequest(ctx context.Context, eventID, organizerID, userID string) error {
	event, err := s.requireOrganizer(ctx, eventID, organizerID, "approve join request")
	if err != nil {
		return err
	}

	var due *domain.Due
	if dueRequired(event) {
		due = newDue(userID, eventID, event.Pricing.Price, time.Now().UTC())
	}

	if err = s.participantRepo.Approve(ctx, eventID, userID, due); err != nil {
		return fmt.Errorf("approve participant: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)
	if due != nil {
		s.cache.InvalidateFinance(ctx, userID)

		s.logger.Info("due generated on approval",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.Int64("amount", due.Amount),
		)
	}

	s.notifyParticipant(ctx, userID, event, func(ctx context.Context, user *domain.User) {
		s.notifier.NotifyJoinApproved(ctx, user, event)
	})

	return nil
}

// RejectJoinRequest declines a pending join request.
func (s *ParticipationService) RejectJoinRequest(ctx context.Context, eventID, organizerID, userID, reason string) error {
	event, err := s.requireOrganizer(ctx, eventID, organizerID, "reject join request")
	if err != nil {
		return err
	}

	if err = s.participantRepo.Reject(ctx, eventID, userID, reason); err != nil {
		return fmt.Errorf("reject participant: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)

	s.notifyParticipant(ctx, userID, event, func(ctx context.Context, user *domain.User) {
		s.notifier.NotifyJoinRejected(ctx, user, event, reason)
	})

	return nil
}

// RequestToLeave is only honoured inside the leave window measured from the
// moment the user joined.
func (s *ParticipationService) RequestToLeave(ctx context.Context, eventID, userID string) error {
	if err := s.participantRepo.RequestLeave(ctx, eventID, userID, s.leaveWindow); err != nil {
		return fmt.Errorf("request leave: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)

	s.logger.Info("leave requested",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}

// ApproveLeaveRequest releases the participant. Any pending due is written
// off via commission, not refunded.
func (s *ParticipationService) ApproveLeaveRequest(ctx context.Context, eventID, organizerID, userID string) error {
	event, err := s.requireOrganizer(ctx, eventID, organizerID, "approve leave request")
	if err != nil {
		return err
	}

	writtenOff, err := s.participantRepo.ApproveLeave(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("approve leave: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)
	if writtenOff != nil {
		s.cache.InvalidateFinance(ctx, userID)

		s.logger.Info("due written off on leave",
			logger.String("due_id", writtenOff.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.Int64("amount", writtenOff.Amount),
		)
	}

	s.notifyParticipant(ctx, userID, event, func(ctx context.Context, user *domain.User) {
		s.notifier.NotifyLeaveApproved(ctx, user, event)
	})

	return nil
}

func (s *ParticipationService) GetParticipant(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	return s.participantRepo.GetByEventAndUser(ctx, eventID, userID)
}

func (s *ParticipationService) requireOrganizer(ctx context.Context, eventID, organizerID, action string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if event.OrganizerID != organizerID {
		s.logger.Warn("non-organizer attempted organizer action",
			logger.String("action", action),
			logger.String("event_id", eventID),
			logger.String("caller_id", organizerID),
		)
		return nil, domain.ErrNotOrganizer
	}

	return event, nil
}

func (s *ParticipationService) notifyParticipant(ctx context.Context, userID string, event *domain.Event, send func(context.Context, *domain.User)) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	go send(context.WithoutCancel(ctx), user)
}

func dueRequired(event *domain.Event) bool {
	return event.Type == domain.EventTypeUserCreated && !event.Pricing.IsFree && event.Pricing.Price > 0
}

func newDue(userID, eventID string, amount int64, now time.Time) *domain.Due {
	return &domain.Due{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventID:   eventID,
		Amount:    amount,
		Status:    domain.DueStatusPending,
		CreatedAt: now,
	}
}
