package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

type CommissionRepo interface {
	// IncrementCleared atomically bumps participants_due_cleared on the
	// event's pending commission and promotes it to available when the last
	// participant has paid. Returns (nil, false, nil) when the event has no
	// pending commission.
	IncrementCleared(ctx context.Context, eventID string) (*domain.Commission, bool, error)
	GetByEvent(ctx context.Context, eventID string) (*domain.Commission, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Commission, error)
	// Withdraw debits the available balance, guarded by the minimum
	// withdrawal amount, and returns the updated finance block.
	Withdraw(ctx context.Context, userID string, amount, minWithdrawal int64) (*domain.Finance, error)
}
