package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

// Cache fronts the read-mostly aggregates. Write paths invalidate their
// entries after the transaction commits, never before.
type Cache interface {
	GetEvent(ctx context.Context, eventID string) (*domain.EventDetails, bool)
	SetEvent(ctx context.Context, d *domain.EventDetails)
	InvalidateEvent(ctx context.Context, eventID string)
	GetFinance(ctx context.Context, userID string) (*domain.Finance, bool)
	SetFinance(ctx context.Context, userID string, f *domain.Finance)
	InvalidateFinance(ctx context.Context, userID string)
}
