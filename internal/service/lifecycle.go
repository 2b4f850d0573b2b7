package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LifecycleService owns the event's own status machine: draft -> upcoming
// -> ongoing -> completed, with cancellation reachable from any non-terminal
// state. Completion triggers commission settlement for user-created events.
type LifecycleService struct {
	eventRepo     ports.EventRepo
	userRepo      ports.UserRepo
	cache         ports.Cache
	notifier      ports.Notifier
	logger        logger.Logger
	commissionPct int
}

func NewLifecycleService(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	cache ports.Cache,
	notifier ports.Notifier,
	logger logger.Logger,
	commissionPct int,
) *LifecycleService {
	return &LifecycleService{
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		cache:         cache,
		notifier:      notifier,
		logger:        logger,
		commissionPct: commissionPct,
	}
}

func (s *LifecycleService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.OrganizerID == "" {
		return nil, fmt.Errorf("%w: organizer_id is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if input.Type != domain.EventTypeUserCreated && input.Type != domain.EventTypeOrganizerSponsored {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, input.Type)
	}
	if !input.Pricing.IsFree && input.Pricing.Price <= 0 {
		return nil, fmt.Errorf("%w: paid event needs a positive price", domain.ErrValidation)
	}
	if input.Eligibility.MinAge < 0 || (input.Eligibility.MaxAge > 0 && input.Eligibility.MaxAge < input.Eligibility.MinAge) {
		return nil, fmt.Errorf("%w: invalid age range", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.OrganizerID); err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: input.OrganizerID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      domain.EventStatusDraft,
		StartsAt:    input.StartsAt,
		Eligibility: input.Eligibility,
		Pricing:     input.Pricing,
		Location:    input.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *LifecycleService) Publish(ctx context.Context, eventID, organizerID string) error {
	err := s.eventRepo.UpdateStatus(ctx, eventID, organizerID,
		[]domain.EventStatus{domain.EventStatusDraft}, domain.EventStatusUpcoming)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)
	return nil
}

func (s *LifecycleService) Start(ctx context.Context, eventID, organizerID string) error {
	err := s.eventRepo.UpdateStatus(ctx, eventID, organizerID,
		[]domain.EventStatus{domain.EventStatusUpcoming}, domain.EventStatusOngoing)
	if err != nil {
		return fmt.Errorf("start event: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)
	return nil
}

// Complete finishes the event and settles commission for user-created
// events: all participants paid up means the organizer's share is available
// immediately, otherwise it waits in pending until the last due clears.
func (s *LifecycleService) Complete(ctx context.Context, eventID, organizerID string) (*domain.Event, error) {
	event, commission, err := s.eventRepo.Complete(ctx, eventID, organizerID, s.commissionPct)
	if err != nil {
		return nil, fmt.Errorf("complete event: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)

	if commission != nil {
		s.cache.InvalidateFinance(ctx, commission.AdminID)

		s.logger.Info("commission created",
			logger.String("event_id", eventID),
			logger.String("admin_id", commission.AdminID),
			logger.String("status", string(commission.Status)),
			logger.Int64("admin_share", commission.AdminShare),
			logger.Int64("platform_share", commission.PlatformShare),
			logger.Int("participants", commission.ParticipantsCount),
		)

		if commission.Status == domain.CommissionStatusAvailable {
			organizer, orgErr := s.userRepo.GetByID(ctx, commission.AdminID)
			if orgErr != nil {
				s.logger.Error("failed to get organizer for notification",
					logger.String("user_id", commission.AdminID),
					logger.String("error", orgErr.Error()),
				)
				return event, nil
			}
			go s.notifier.NotifyCommissionAvailable(context.WithoutCancel(ctx), organizer, commission)
		}
	}

	return event, nil
}

// Cancel voids the event. Dues already generated are not reversed here;
// that stays a manual-review case.
func (s *LifecycleService) Cancel(ctx context.Context, eventID, organizerID, reason string) error {
	if err := s.eventRepo.Cancel(ctx, eventID, organizerID, reason); err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	s.cache.InvalidateEvent(ctx, eventID)

	s.logger.Info("event cancelled",
		logger.String("event_id", eventID),
		logger.String("reason", reason),
	)

	return nil
}

func (s *LifecycleService) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	if details, ok := s.cache.GetEvent(ctx, eventID); ok {
		return details, nil
	}

	details, err := s.eventRepo.GetDetails(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.cache.SetEvent(ctx, details)
	return details, nil
}

func (s *LifecycleService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// StartDueEvents is called by the scheduler to flip upcoming events whose
// start time has passed to ongoing.
func (s *LifecycleService) StartDueEvents(ctx context.Context) ([]*domain.Event, error) {
	started, err := s.eventRepo.StartDue(ctx)
	if err != nil {
		return nil, fmt.Errorf("start due events: %w", err)
	}

	for _, e := range started {
		s.cache.InvalidateEvent(ctx, e.ID)
	}

	return started, nil
}
