package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, organizer_id, title, description, type, status, starts_at,
			genders, min_age, max_age, max_distance_km, member_limit, requires_approval,
			is_free, price, latitude, longitude,
			participant_count, waitlist_count, total_dues_generated, total_dues_cleared,
			created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	tx       *Coordinator
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB, tx *Coordinator) *EventRepository {
	return &EventRepository{
		db:       db,
		tx:       tx,
		strategy: defaultStrategy(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		genders  pq.StringArray
		maxDist  sql.NullFloat64
		lat, lng sql.NullFloat64
	)
	err := row.Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Type, &e.Status, &e.StartsAt,
		&genders, &e.Eligibility.MinAge, &e.Eligibility.MaxAge, &maxDist,
		&e.Eligibility.MemberLimit, &e.Eligibility.RequiresApproval,
		&e.Pricing.IsFree, &e.Pricing.Price, &lat, &lng,
		&e.ParticipantCount, &e.WaitlistCount, &e.TotalDuesGenerated, &e.TotalDuesCleared,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Eligibility.Genders = genders
	if maxDist.Valid {
		e.Eligibility.MaxDistanceKm = &maxDist.Float64
	}
	if lat.Valid && lng.Valid {
		e.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
	}

	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, organizer_id, title, description, type, status, starts_at,
				genders, min_age, max_age, max_distance_km, member_limit, requires_approval,
				is_free, price, latitude, longitude, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)`

	var lat, lng *float64
	if e.Location != nil {
		lat, lng = &e.Location.Lat, &e.Location.Lng
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OrganizerID, e.Title, e.Description, e.Type, e.Status, e.StartsAt,
		pq.Array(e.Eligibility.Genders), e.Eligibility.MinAge, e.Eligibility.MaxAge,
		e.Eligibility.MaxDistanceKm, e.Eligibility.MemberLimit, e.Eligibility.RequiresApproval,
		e.Pricing.IsFree, e.Pricing.Price, lat, lng, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	e, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, event_id, user_id, status, joined_at, has_pending_dues, dues_cleared, updated_at
			  FROM participants
			  WHERE event_id = $1
			  ORDER BY joined_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	details := &domain.EventDetails{Event: *e}
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.Status, &p.JoinedAt,
			&p.HasPendingDues, &p.DuesCleared, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		details.Participants = append(details.Participants, p)
	}

	return details, rows.Err()
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// UpdateStatus moves the event forward under the source-status guard. On a
// guard miss the follow-up read distinguishes not-found, wrong organizer
// and an illegal transition.
func (r *EventRepository) UpdateStatus(ctx context.Context, eventID, organizerID string, from []domain.EventStatus, to domain.EventStatus) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		query := `UPDATE events SET status = $4, updated_at = now()
				  WHERE id = $1 AND organizer_id = $2 AND status = ANY($3)`
		res, err := tx.ExecContext(ctx, query, eventID, organizerID, pq.Array(from), to)
		if err != nil {
			return fmt.Errorf("update event status: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("event rows affected: %w", err)
		}
		if rows == 0 {
			var owner string
			var status domain.EventStatus
			err = tx.QueryRowContext(ctx, `SELECT organizer_id, status FROM events WHERE id = $1`, eventID).
				Scan(&owner, &status)
			if err != nil {
				return domain.ErrEventNotFound
			}
			if owner != organizerID {
				return domain.ErrNotOrganizer
			}
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, status, to)
		}

		return nil
	})
}

// Cancel voids the event and records why, under the same guard shape as
// UpdateStatus.
func (r *EventRepository) Cancel(ctx context.Context, eventID, organizerID, reason string) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		query := `UPDATE events SET status = $4, cancel_reason = NULLIF($5, ''), updated_at = now()
				  WHERE id = $1 AND organizer_id = $2 AND status = ANY($3)`
		res, err := tx.ExecContext(ctx, query, eventID, organizerID,
			pq.Array(domain.CancellableStatuses), domain.EventStatusCancelled, reason)
		if err != nil {
			return fmt.Errorf("cancel event: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("event rows affected: %w", err)
		}
		if rows == 0 {
			var owner string
			var status domain.EventStatus
			err = tx.QueryRowContext(ctx, `SELECT organizer_id, status FROM events WHERE id = $1`, eventID).
				Scan(&owner, &status)
			if err != nil {
				return domain.ErrEventNotFound
			}
			if owner != organizerID {
				return domain.ErrNotOrganizer
			}
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, status, domain.EventStatusCancelled)
		}

		return nil
	})
}

// Complete marks the event completed and, for user-created events, creates
// the commission in one transaction. Participant counts and the cleared
// figure are re-derived inside the transaction so a due cleared a moment
// earlier is never missed.
func (r *EventRepository) Complete(ctx context.Context, eventID, organizerID string, commissionPct int) (*domain.Event, *domain.Commission, error) {
	var (
		event      *domain.Event
		commission *domain.Commission
	)

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, eventID)
		e, err := scanEvent(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("lock event: %w", err)
		}

		if e.OrganizerID != organizerID {
			return domain.ErrNotOrganizer
		}
		if !statusIn(e.Status, domain.CompletableStatuses) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, e.Status, domain.EventStatusCompleted)
		}

		if _, err = tx.ExecContext(ctx,
			`UPDATE events SET status = $2, updated_at = now() WHERE id = $1`,
			eventID, domain.EventStatusCompleted,
		); err != nil {
			return fmt.Errorf("complete event: %w", err)
		}
		e.Status = domain.EventStatusCompleted

		if e.Type == domain.EventTypeUserCreated {
			commission, err = r.createCommissionTx(ctx, tx, e, commissionPct)
			if err != nil {
				return err
			}
		}

		event = e
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return event, commission, nil
}

func (r *EventRepository) createCommissionTx(ctx context.Context, tx *sql.Tx, e *domain.Event, commissionPct int) (*domain.Commission, error) {
	var total, cleared int
	countQuery := `SELECT COUNT(*), COUNT(*) FILTER (WHERE dues_cleared)
				   FROM participants
				   WHERE event_id = $1 AND status = 'approved'`
	if err := tx.QueryRowContext(ctx, countQuery, e.ID).Scan(&total, &cleared); err != nil {
		return nil, fmt.Errorf("count settled participants: %w", err)
	}

	adminShare, platformShare := domain.SplitCommission(e.TotalDuesCleared, commissionPct)

	status := domain.CommissionStatusPending
	if cleared == total {
		status = domain.CommissionStatusAvailable
	}

	c := &domain.Commission{
		AdminID:                e.OrganizerID,
		EventID:                e.ID,
		Status:                 status,
		TotalDuesGenerated:     e.TotalDuesGenerated,
		AdminShare:             adminShare,
		PlatformShare:          platformShare,
		ParticipantsCount:      total,
		ParticipantsDueCleared: cleared,
	}

	insert := `INSERT INTO commissions (id, admin_id, event_id, status, total_dues_generated,
				admin_share, platform_share, participants_count, participants_due_cleared,
				created_at, updated_at)
			   VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, now(), now())
			   RETURNING id, created_at, updated_at`
	err := tx.QueryRowContext(ctx, insert,
		c.AdminID, c.EventID, c.Status, c.TotalDuesGenerated,
		c.AdminShare, c.PlatformShare, c.ParticipantsCount, c.ParticipantsDueCleared,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert commission: %w", err)
	}

	var credit string
	if status == domain.CommissionStatusAvailable {
		credit = `UPDATE users SET available_commission = available_commission + $2,
					total_earned = total_earned + $2
				  WHERE id = $1`
	} else {
		credit = `UPDATE users SET pending_commission = pending_commission + $2 WHERE id = $1`
	}
	if _, err = tx.ExecContext(ctx, credit, c.AdminID, c.AdminShare); err != nil {
		return nil, fmt.Errorf("credit organizer: %w", err)
	}

	return c, nil
}

// StartDue flips upcoming events whose start time has passed to ongoing.
func (r *EventRepository) StartDue(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events SET status = $2, updated_at = now()
			  WHERE status = $1 AND starts_at <= now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EventStatusUpcoming, domain.EventStatusOngoing)
	if err != nil {
		return nil, fmt.Errorf("start due events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func statusIn(s domain.EventStatus, set []domain.EventStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
