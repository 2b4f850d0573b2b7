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

// settlementEngine is the slice of the commission service the dues ledger
// needs: every cleared due bumps the event's settlement counter.
type settlementEngine interface {
	OnDueCleared(ctx context.Context, eventID string) error
}

// DuesService is the dues ledger: it creates and clears due records and
// keeps the user balance and event totals moving with them.
type DuesService struct {
	dueRepo       ports.DueRepo
	userRepo      ports.UserRepo
	eventRepo     ports.EventRepo
	settlement    settlementEngine
	cache         ports.Cache
	logger        logger.Logger
	gatewayFeePct int
	gstPct        int
}

func NewDuesService(
	dueRepo ports.DueRepo,
	userRepo ports.UserRepo,
	eventRepo ports.EventRepo,
	settlement settlementEngine,
	cache ports.Cache,
	logger logger.Logger,
	gatewayFeePct, gstPct int,
) *DuesService {
	return &DuesService{
		dueRepo:       dueRepo,
		userRepo:      userRepo,
		eventRepo:     eventRepo,
		settlement:    settlement,
		cache:         cache,
		logger:        logger,
		gatewayFeePct: gatewayFeePct,
		gstPct:        gstPct,
	}
}

func (s *DuesService) CreateDue(ctx context.Context, userID, eventID string, amount int64) (*domain.Due, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: due amount must be positive", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	due := newDue(userID, eventID, amount, time.Now().UTC())
	if err := s.dueRepo.Create(ctx, due); err != nil {
		return nil, fmt.Errorf("create due: %w", err)
	}

	s.cache.InvalidateFinance(ctx, userID)
	s.cache.InvalidateEvent(ctx, eventID)

	s.logger.Info("due created",
		logger.String("due_id", due.ID),
		logger.String("user_id", userID),
		logger.String("event_id", eventID),
		logger.Int64("amount", amount),
	)

	return due, nil
}

// ClearDue settles one due and feeds the settlement engine. Clearing an
// already-cleared due fails with ErrDueAlreadyCleared; state is unchanged.
func (s *DuesService) ClearDue(ctx context.Context, dueID string, via domain.ClearedVia, referenceID string) (*domain.Due, error) {
	due, err := s.dueRepo.Clear(ctx, dueID, via, referenceID)
	if err != nil {
		return nil, fmt.Errorf("clear due: %w", err)
	}

	s.cache.InvalidateFinance(ctx, due.UserID)
	s.cache.InvalidateEvent(ctx, due.EventID)

	s.logger.Info("due cleared",
		logger.String("due_id", due.ID),
		logger.String("user_id", due.UserID),
		logger.String("event_id", due.EventID),
		logger.Int64("amount", due.Amount),
		logger.String("via", string(via)),
		logger.String("reference_id", referenceID),
	)

	if err = s.settlement.OnDueCleared(ctx, due.EventID); err != nil {
		return due, fmt.Errorf("settle commission: %w", err)
	}

	return due, nil
}

// ClearMany settles a batch atomically: either every listed pending due
// clears or none do. Ids that are missing or already cleared are skipped so
// retried calls stay idempotent; the skip count is reported back.
func (s *DuesService) ClearMany(ctx context.Context, dueIDs []string, via domain.ClearedVia, referenceID string) ([]*domain.Due, int, error) {
	cleared, skipped, err := s.dueRepo.ClearMany(ctx, dueIDs, via, referenceID)
	if err != nil {
		return nil, 0, fmt.Errorf("clear dues: %w", err)
	}

	s.afterBatchClear(ctx, cleared)

	s.logger.Info("dues batch cleared",
		logger.Int("cleared", len(cleared)),
		logger.Int("skipped", skipped),
		logger.String("via", string(via)),
		logger.String("reference_id", referenceID),
	)

	if err = s.settleBatch(ctx, cleared); err != nil {
		return cleared, skipped, err
	}

	return cleared, skipped, nil
}

// ClearDuesWithCommission lets an organizer pay their own dues out of the
// available commission balance.
func (s *DuesService) ClearDuesWithCommission(ctx context.Context, userID string, dueIDs []string) ([]*domain.Due, int, error) {
	cleared, skipped, err := s.dueRepo.ClearManyWithCommission(ctx, userID, dueIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("clear dues with commission: %w", err)
	}

	s.afterBatchClear(ctx, cleared)

	var total int64
	for _, d := range cleared {
		total += d.Amount
	}
	s.logger.Info("dues cleared from commission balance",
		logger.String("user_id", userID),
		logger.Int("cleared", len(cleared)),
		logger.Int("skipped", skipped),
		logger.Int64("total", total),
	)

	if err = s.settleBatch(ctx, cleared); err != nil {
		return cleared, skipped, err
	}

	return cleared, skipped, nil
}

// CreatePaymentOrder snapshots the payable amount for a set of pending
// dues. Gateway fee and GST are added on top, the discount comes off, and
// every percentage is floored on integer minor units.
func (s *DuesService) CreatePaymentOrder(ctx context.Context, userID string, dueIDs []string, discountPct int) (*domain.PaymentOrder, error) {
	pending, err := s.dueRepo.ListPendingByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending dues: %w", err)
	}

	requested := make(map[string]bool, len(dueIDs))
	for _, id := range dueIDs {
		requested[id] = true
	}

	var (
		amount int64
		ids    []string
	)
	for _, d := range pending {
		if requested[d.ID] {
			amount += d.Amount
			ids = append(ids, d.ID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no pending dues to pay", domain.ErrValidation)
	}

	fee := domain.PercentShare(amount, s.gatewayFeePct)
	gst := domain.PercentShare(fee, s.gstPct)
	discount := domain.PercentShare(amount, discountPct)

	now := time.Now().UTC()
	order := &domain.PaymentOrder{
		ID:             uuid.New().String(),
		GatewayOrderID: "order_" + uuid.New().String(),
		UserID:         userID,
		DueIDs:         ids,
		Amount:         amount,
		GatewayFee:     fee,
		GST:            gst,
		Discount:       discount,
		Payable:        amount + fee + gst - discount,
		Status:         domain.PaymentOrderStatusCreated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.dueRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}

	s.logger.Info("payment order created",
		logger.String("order_id", order.ID),
		logger.String("gateway_order_id", order.GatewayOrderID),
		logger.String("user_id", userID),
		logger.Int("dues", len(ids)),
		logger.Int64("payable", order.Payable),
	)

	return order, nil
}

// HandleGatewayCallback records the outcome of a gateway payment. The
// engine never talks to the gateway itself; it only maps the callback to
// the dues the order covers.
func (s *DuesService) HandleGatewayCallback(ctx context.Context, gatewayOrderID, gatewayPaymentID string, success bool) error {
	order, err := s.dueRepo.GetOrderByGatewayID(ctx, gatewayOrderID)
	if err != nil {
		return fmt.Errorf("resolve payment order: %w", err)
	}

	if order.Status != domain.PaymentOrderStatusCreated {
		return domain.ErrAlreadyProcessed
	}

	if !success {
		if err = s.dueRepo.MarkOrder(ctx, order.ID, domain.PaymentOrderStatusFailed, gatewayPaymentID); err != nil {
			return fmt.Errorf("mark order failed: %w", err)
		}
		s.logger.Warn("gateway payment failed",
			logger.String("order_id", order.ID),
			logger.String("gateway_payment_id", gatewayPaymentID),
			logger.String("user_id", order.UserID),
			logger.Int64("payable", order.Payable),
		)
		return nil
	}

	if _, _, err = s.ClearMany(ctx, order.DueIDs, domain.ClearedViaPayment, gatewayPaymentID); err != nil {
		return err
	}

	if err = s.dueRepo.MarkOrder(ctx, order.ID, domain.PaymentOrderStatusPaid, gatewayPaymentID); err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	return nil
}

func (s *DuesService) ListPendingByUser(ctx context.Context, userID string) ([]*domain.Due, error) {
	return s.dueRepo.ListPendingByUser(ctx, userID)
}

func (s *DuesService) afterBatchClear(ctx context.Context, cleared []*domain.Due) {
	users := make(map[string]bool)
	events := make(map[string]bool)
	for _, d := range cleared {
		if !users[d.UserID] {
			users[d.UserID] = true
			s.cache.InvalidateFinance(ctx, d.UserID)
		}
		if !events[d.EventID] {
			events[d.EventID] = true
			s.cache.InvalidateEvent(ctx, d.EventID)
		}
	}
}

// settleBatch bumps the settlement counter once per cleared due; each due
// represents one participant paying up.
func (s *DuesService) settleBatch(ctx context.Context, cleared []*domain.Due) error {
	for _, d := range cleared {
		if err := s.settlement.OnDueCleared(ctx, d.EventID); err != nil {
			return fmt.Errorf("settle commission for event %s: %w", d.EventID, err)
		}
	}
	return nil
}
