package ports

import (
	"context"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetFinance(ctx context.Context, userID string) (*domain.Finance, error)
	List(ctx context.Context) ([]*domain.User, error)
	// ReconcileDues repairs users whose dues balance has drifted from the
	// sum of their pending due records, returning how many were fixed.
	ReconcileDues(ctx context.Context) (int, error)
}
