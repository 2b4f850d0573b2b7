package ports

import (
	"context"
	"time"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

// ParticipantRepo mutates the event roster. Every mutation recomputes the
// event's participant and waitlist counters from the roster inside the same
// transaction.
type ParticipantRepo interface {
	// Join appends the participant; due is inserted in the same transaction
	// when the join is auto-approved on a paid user-created event.
	Join(ctx context.Context, p *domain.Participant, due *domain.Due) error
	// Approve moves pending_approval -> approved under the capacity guard;
	// due, when non-nil, is created in the same transaction.
	Approve(ctx context.Context, eventID, userID string, due *domain.Due) error
	Reject(ctx context.Context, eventID, userID, reason string) error
	// RequestLeave moves approved -> leave_requested if still inside the
	// leave window measured from joined_at.
	RequestLeave(ctx context.Context, eventID, userID string, window time.Duration) error
	// ApproveLeave moves leave_requested -> left, writes off any pending due
	// via commission and returns it (nil when there was none).
	ApproveLeave(ctx context.Context, eventID, userID string) (*domain.Due, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Participant, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error)
}
