package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_StartsDueEvents(t *testing.T) {
	events := mocks.NewMockEventStarter(t)
	reconciler := mocks.NewMockDuesReconciler(t)
	log := newTestLogger(t)

	s := New(events, reconciler, 50*time.Millisecond, log)

	started := []*domain.Event{
		{ID: "e1", Title: "Trivia night"},
	}
	events.EXPECT().StartDueEvents(mock.Anything).Return(started, nil)
	reconciler.EXPECT().ReconcileDues(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(events.Calls), 1)
	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

// A failure starting events must not stop reconciliation in the same tick.
func TestScheduler_Tick_HandlesStarterError(t *testing.T) {
	events := mocks.NewMockEventStarter(t)
	reconciler := mocks.NewMockDuesReconciler(t)
	log := newTestLogger(t)

	s := New(events, reconciler, 50*time.Millisecond, log)

	events.EXPECT().StartDueEvents(mock.Anything).Return(nil, errors.New("db error"))
	reconciler.EXPECT().ReconcileDues(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

func TestScheduler_Tick_HandlesReconcilerError(t *testing.T) {
	events := mocks.NewMockEventStarter(t)
	reconciler := mocks.NewMockDuesReconciler(t)
	log := newTestLogger(t)

	s := New(events, reconciler, 50*time.Millisecond, log)

	events.EXPECT().StartDueEvents(mock.Anything).Return(nil, nil)
	reconciler.EXPECT().ReconcileDues(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(events.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	events := mocks.NewMockEventStarter(t)
	reconciler := mocks.NewMockDuesReconciler(t)
	log := newTestLogger(t)

	s := New(events, reconciler, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	events := mocks.NewMockEventStarter(t)
	reconciler := mocks.NewMockDuesReconciler(t)
	log := newTestLogger(t)

	s := New(events, reconciler, 30*time.Millisecond, log)

	events.EXPECT().StartDueEvents(mock.Anything).Return(nil, nil).Times(3)
	reconciler.EXPECT().ReconcileDues(mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(events.Calls), 3)
}
