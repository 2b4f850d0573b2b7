package service

import (
	"context"
	"fmt"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CommissionService promotes pending commissions as dues clear and serves
// the organizer-facing finance surface.
type CommissionService struct {
	commissionRepo ports.CommissionRepo
	userRepo       ports.UserRepo
	cache          ports.Cache
	notifier       ports.Notifier
	logger         logger.Logger
	minWithdrawal  int64
}

func NewCommissionService(
	commissionRepo ports.CommissionRepo,
	userRepo ports.UserRepo,
	cache ports.Cache,
	notifier ports.Notifier,
	logger logger.Logger,
	minWithdrawal int64,
) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		userRepo:       userRepo,
		cache:          cache,
		notifier:       notifier,
		logger:         logger,
		minWithdrawal:  minWithdrawal,
	}
}

// OnDueCleared bumps the event's settlement counter. When the last
// participant's due clears, the commission flips to available and the
// organizer's pending balance is released. Events without a pending
// commission (not yet completed, or already settled) are a no-op.
func (s *CommissionService) OnDueCleared(ctx context.Context, eventID string) error {
	commission, promoted, err := s.commissionRepo.IncrementCleared(ctx, eventID)
	if err != nil {
		return fmt.Errorf("increment settlement counter: %w", err)
	}
	if commission == nil {
		return nil
	}

	s.logger.Info("settlement counter advanced",
		logger.String("event_id", eventID),
		logger.String("commission_id", commission.ID),
		logger.Int("cleared", commission.ParticipantsDueCleared),
		logger.Int("total", commission.ParticipantsCount),
	)

	if !promoted {
		return nil
	}

	s.cache.InvalidateFinance(ctx, commission.AdminID)

	s.logger.Info("commission promoted to available",
		logger.String("event_id", eventID),
		logger.String("admin_id", commission.AdminID),
		logger.Int64("admin_share", commission.AdminShare),
	)

	organizer, err := s.userRepo.GetByID(ctx, commission.AdminID)
	if err != nil {
		s.logger.Error("failed to get organizer for notification",
			logger.String("user_id", commission.AdminID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyCommissionAvailable(context.WithoutCancel(ctx), organizer, commission)

	return nil
}

func (s *CommissionService) GetFinanceSummary(ctx context.Context, userID string) (*domain.Finance, error) {
	if f, ok := s.cache.GetFinance(ctx, userID); ok {
		return f, nil
	}

	f, err := s.userRepo.GetFinance(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.SetFinance(ctx, userID, f)
	return f, nil
}

func (s *CommissionService) Withdraw(ctx context.Context, userID string, amount int64) (*domain.Finance, error) {
	finance, err := s.commissionRepo.Withdraw(ctx, userID, amount, s.minWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("withdraw commission: %w", err)
	}

	s.cache.InvalidateFinance(ctx, userID)

	s.logger.Info("commission withdrawn",
		logger.String("user_id", userID),
		logger.Int64("amount", amount),
		logger.Int64("available_after", finance.AvailableCommission),
	)

	return finance, nil
}

func (s *CommissionService) GetByEvent(ctx context.Context, eventID string) (*domain.Commission, error) {
	return s.commissionRepo.GetByEvent(ctx, eventID)
}

func (s *CommissionService) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Commission, error) {
	return s.commissionRepo.ListByAdmin(ctx, adminID)
}
