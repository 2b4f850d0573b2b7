package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// Coordinator wraps every multi-aggregate mutation in a single transaction:
// either all mutations commit or none do, and the underlying error surfaces
// unchanged on abort.
type Coordinator struct {
	db *dbpg.DB
}

func NewCoordinator(db *dbpg.DB) *Coordinator {
	return &Coordinator{db: db}
}

func (c *Coordinator) Atomic(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// recomputeEventCounts re-derives the event's roster counters from the
// participants table. Called inside the same transaction as every roster
// mutation; the counters are never incremented independently.
func recomputeEventCounts(ctx context.Context, tx *sql.Tx, eventID string) error {
	query := `UPDATE events SET
				participant_count = (SELECT COUNT(*) FROM participants WHERE event_id = $1 AND status = 'approved'),
				waitlist_count    = (SELECT COUNT(*) FROM participants WHERE event_id = $1 AND status = 'pending_approval'),
				updated_at = now()
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("recompute event counts: %w", err)
	}
	return nil
}
