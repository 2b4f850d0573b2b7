package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	// UpdateStatus moves the event forward, guarded by the allowed source
	// statuses. Returns ErrInvalidTransition when the guard fails.
	UpdateStatus(ctx context.Context, eventID, organizerID string, from []domain.EventStatus, to domain.EventStatus) error
	// Cancel voids the event and persists the cancellation reason.
	Cancel(ctx context.Context, eventID, organizerID, reason string) error
	// Complete atomically marks the event completed and, for user-created
	// events, creates the commission record and credits the organizer.
	// Counts and dues totals are re-derived inside the transaction.
	Complete(ctx context.Context, eventID, organizerID string, commissionPct int) (*domain.Event, *domain.Commission, error)
	// StartDue flips upcoming events whose start time has passed to ongoing.
	StartDue(ctx context.Context) ([]*domain.Event, error)
}
