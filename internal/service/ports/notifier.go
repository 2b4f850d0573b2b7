package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

// Notifier delivers fire-and-forget notifications. Implementations must
// never return delivery failures into the calling flow.
type Notifier interface {
	NotifyJoinRequested(ctx context.Context, organizer, user *domain.User, event *domain.Event)
	NotifyJoinApproved(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyJoinRejected(ctx context.Context, user *domain.User, event *domain.Event, reason string)
	NotifyLeaveApproved(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyCommissionAvailable(ctx context.Context, organizer *domain.User, c *domain.Commission)
}
