package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

type DueRepo interface {
	// Create inserts the due and, in the same transaction, increments the
	// user's dues balance and the event's total generated.
	Create(ctx context.Context, due *domain.Due) error
	GetByID(ctx context.Context, id string) (*domain.Due, error)
	// Clear settles one due. ErrDueAlreadyCleared when it is not pending.
	Clear(ctx context.Context, dueID string, via domain.ClearedVia, referenceID string) (*domain.Due, error)
	// ClearMany settles every listed pending due atomically; missing or
	// already-cleared dues are skipped, the skip count is returned.
	ClearMany(ctx context.Context, dueIDs []string, via domain.ClearedVia, referenceID string) (cleared []*domain.Due, skipped int, err error)
	// ClearManyWithCommission settles the user's listed pending dues out of
	// their available commission balance.
	ClearManyWithCommission(ctx context.Context, userID string, dueIDs []string) (cleared []*domain.Due, skipped int, err error)
	ListPendingByUser(ctx context.Context, userID string) ([]*domain.Due, error)

	CreateOrder(ctx context.Context, o *domain.PaymentOrder) error
	GetOrderByGatewayID(ctx context.Context, gatewayOrderID string) (*domain.PaymentOrder, error)
	MarkOrder(ctx context.Context, orderID string, status domain.PaymentOrderStatus, gatewayPaymentID string) error
}
