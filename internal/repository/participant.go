package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	tx       *Coordinator
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB, tx *Coordinator) *ParticipantRepository {
	return &ParticipantRepository{
		db:       db,
		tx:       tx,
		strategy: defaultStrategy(),
	}
}

func (r *ParticipantRepository) Join(ctx context.Context, p *domain.Participant, due *domain.Due) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		var (
			status      domain.EventStatus
			organizerID string
			memberLimit int
		)
		lockQuery := `SELECT status, organizer_id, member_limit FROM events WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lockQuery, p.EventID).Scan(&status, &organizerID, &memberLimit); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}

		if status != domain.EventStatusUpcoming {
			return domain.ErrEventNotJoinable
		}
		if organizerID == p.UserID {
			return domain.ErrOrganizerCannotJoin
		}

		if p.Status == domain.ParticipantStatusApproved && memberLimit > 0 {
			approved, err := countApproved(ctx, tx, p.EventID)
			if err != nil {
				return err
			}
			if approved >= memberLimit {
				return domain.ErrEventFull
			}
		}

		insert := `INSERT INTO participants (id, event_id, user_id, status, joined_at, has_pending_dues, dues_cleared, updated_at)
				   VALUES ($1, $2, $3, $4, $5, false, false, $5)`
		if _, err := tx.ExecContext(ctx, insert, p.ID, p.EventID, p.UserID, p.Status, p.JoinedAt); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.ErrAlreadyJoined
			}
			return fmt.Errorf("insert participant: %w", err)
		}

		if due != nil {
			if err := insertDueTx(ctx, tx, due); err != nil {
				return err
			}
			p.HasPendingDues = true
		}

		if p.Status == domain.ParticipantStatusApproved {
			if err := bumpEventsJoined(ctx, tx, p.UserID, 1); err != nil {
				return err
			}
		}

		return recomputeEventCounts(ctx, tx, p.EventID)
	})
}

func (r *ParticipantRepository) Approve(ctx context.Context, eventID, userID string, due *domain.Due) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		var memberLimit int
		lockQuery := `SELECT member_limit FROM events WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&memberLimit); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}

		if memberLimit > 0 {
			approved, err := countApproved(ctx, tx, eventID)
			if err != nil {
				return err
			}
			if approved >= memberLimit {
				return domain.ErrEventFull
			}
		}

		if err := r.transition(ctx, tx, eventID, userID,
			domain.ParticipantStatusPendingApproval, domain.ParticipantStatusApproved,
			domain.ErrParticipantNotPending, ""); err != nil {
			return err
		}

		if due != nil {
			if err := insertDueTx(ctx, tx, due); err != nil {
				return err
			}
		}

		if err := bumpEventsJoined(ctx, tx, userID, 1); err != nil {
			return err
		}

		return recomputeEventCounts(ctx, tx, eventID)
	})
}

func (r *ParticipantRepository) Reject(ctx context.Context, eventID, userID, reason string) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		if err := r.transition(ctx, tx, eventID, userID,
			domain.ParticipantStatusPendingApproval, domain.ParticipantStatusRejected,
			domain.ErrParticipantNotPending, reason); err != nil {
			return err
		}
		return recomputeEventCounts(ctx, tx, eventID)
	})
}

func (r *ParticipantRepository) RequestLeave(ctx context.Context, eventID, userID string, window time.Duration) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		query := `UPDATE participants SET status = $4, updated_at = now()
				  WHERE event_id = $1 AND user_id = $2 AND status = $3
				    AND joined_at + make_interval(secs => $5) >= now()`
		res, err := tx.ExecContext(ctx, query, eventID, userID,
			domain.ParticipantStatusApproved, domain.ParticipantStatusLeaveRequested,
			window.Seconds(),
		)
		if err != nil {
			return fmt.Errorf("request leave: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("participant rows affected: %w", err)
		}
		if rows == 0 {
			// Distinguish: no active participant, wrong status, or expired window.
			var status domain.ParticipantStatus
			var joinedAt time.Time
			checkQuery := `SELECT status, joined_at FROM participants
						   WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)
						   ORDER BY joined_at DESC LIMIT 1`
			scanErr := tx.QueryRowContext(ctx, checkQuery, eventID, userID,
				pq.Array(domain.ActiveParticipantStatuses)).Scan(&status, &joinedAt)
			if scanErr != nil {
				return domain.ErrParticipantNotFound
			}
			if status != domain.ParticipantStatusApproved {
				return domain.ErrParticipantNotApproved
			}
			return domain.ErrLeaveWindowExpired
		}

		return recomputeEventCounts(ctx, tx, eventID)
	})
}

// ApproveLeave writes off any pending due via commission rather than
// refunding it, and pulls the written-off amount back out of the event's
// generated total so organizer commission stays honest.
func (r *ParticipantRepository) ApproveLeave(ctx context.Context, eventID, userID string) (*domain.Due, error) {
	var writtenOff *domain.Due

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		if err := r.transition(ctx, tx, eventID, userID,
			domain.ParticipantStatusLeaveRequested, domain.ParticipantStatusLeft,
			domain.ErrLeaveNotRequested, ""); err != nil {
			return err
		}

		writeOff := `UPDATE dues SET status = $3, cleared_via = $4, cleared_at = now()
					 WHERE event_id = $1 AND user_id = $2 AND status = $5
					 RETURNING id, user_id, event_id, amount, status, cleared_via, created_at, cleared_at`
		row := tx.QueryRowContext(ctx, writeOff, eventID, userID,
			domain.DueStatusCleared, domain.ClearedViaCommission, domain.DueStatusPending)

		var d domain.Due
		err := row.Scan(&d.ID, &d.UserID, &d.EventID, &d.Amount, &d.Status, &d.ClearedVia, &d.CreatedAt, &d.ClearedAt)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// Nothing pending to write off.
		case err != nil:
			return fmt.Errorf("write off due: %w", err)
		default:
			writtenOff = &d
			if _, err = tx.ExecContext(ctx,
				`UPDATE users SET dues = GREATEST(dues - $2, 0) WHERE id = $1`,
				userID, d.Amount,
			); err != nil {
				return fmt.Errorf("decrement user dues: %w", err)
			}
			if _, err = tx.ExecContext(ctx,
				`UPDATE events SET total_dues_generated = GREATEST(total_dues_generated - $2, 0) WHERE id = $1`,
				eventID, d.Amount,
			); err != nil {
				return fmt.Errorf("decrement dues generated: %w", err)
			}
		}

		if err := bumpEventsJoined(ctx, tx, userID, -1); err != nil {
			return err
		}

		return recomputeEventCounts(ctx, tx, eventID)
	})
	if err != nil {
		return nil, err
	}

	return writtenOff, nil
}

func (r *ParticipantRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Participant, error) {
	query := `SELECT id, event_id, user_id, status, joined_at, has_pending_dues, dues_cleared, updated_at
			  FROM participants
			  WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)
			  ORDER BY joined_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, pq.Array(domain.ActiveParticipantStatuses))
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	var p domain.Participant
	if err = row.Scan(&p.ID, &p.EventID, &p.UserID, &p.Status, &p.JoinedAt,
		&p.HasPendingDues, &p.DuesCleared, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return &p, nil
}

func (r *ParticipantRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `SELECT id, event_id, user_id, status, joined_at, has_pending_dues, dues_cleared, updated_at
			  FROM participants
			  WHERE event_id = $1
			  ORDER BY joined_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.Status, &p.JoinedAt,
			&p.HasPendingDues, &p.DuesCleared, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// transition applies a guarded status move and classifies a guard miss as
// either participant-not-found or the supplied wrong-status error.
func (r *ParticipantRepository) transition(ctx context.Context, tx *sql.Tx, eventID, userID string,
	from, to domain.ParticipantStatus, wrongStatus error, reason string,
) error {
	query := `UPDATE participants SET status = $4, status_reason = NULLIF($5, ''), updated_at = now()
			  WHERE event_id = $1 AND user_id = $2 AND status = $3`
	res, err := tx.ExecContext(ctx, query, eventID, userID, from, to, reason)
	if err != nil {
		return fmt.Errorf("transition participant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participant rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM participants
					   WHERE event_id = $1 AND user_id = $2 AND status = ANY($3))`
		if err = tx.QueryRowContext(ctx, checkQuery, eventID, userID,
			pq.Array(domain.ActiveParticipantStatuses)).Scan(&exists); err != nil {
			return fmt.Errorf("check participant: %w", err)
		}
		if !exists {
			return domain.ErrParticipantNotFound
		}
		return wrongStatus
	}

	return nil
}

func countApproved(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM participants WHERE event_id = $1 AND status = $2`
	if err := tx.QueryRowContext(ctx, query, eventID, domain.ParticipantStatusApproved).Scan(&n); err != nil {
		return 0, fmt.Errorf("count approved participants: %w", err)
	}
	return n, nil
}

func bumpEventsJoined(ctx context.Context, tx *sql.Tx, userID string, delta int) error {
	query := `UPDATE users SET events_joined = GREATEST(events_joined + $2, 0) WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, userID, delta); err != nil {
		return fmt.Errorf("update events joined: %w", err)
	}
	return nil
}
