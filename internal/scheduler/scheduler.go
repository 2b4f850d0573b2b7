package scheduler

import (
	"context"
	"time"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventStarter interface {
	StartDueEvents(ctx context.Context) ([]*domain.Event, error)
}

type duesReconciler interface {
	ReconcileDues(ctx context.Context) (int, error)
}

// Scheduler periodically flips upcoming events to ongoing once their start
// time passes and reconciles user dues balances against pending due records.
type Scheduler struct {
	events     eventStarter
	reconciler duesReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	events eventStarter,
	reconciler duesReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		events:     events,
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started, err := s.events.StartDueEvents(ctx)
	if err != nil {
		s.logger.Error("failed to start due events",
			logger.String("error", err.Error()),
		)
	}
	for _, e := range started {
		s.logger.Info("event started",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
		)
	}

	if _, err = s.reconciler.ReconcileDues(ctx); err != nil {
		s.logger.Error("failed to reconcile dues",
			logger.String("error", err.Error()),
		)
	}
}
