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

const dueColumns = `id, user_id, event_id, amount, status, cleared_via, reference_id, created_at, cleared_at`

type DueRepository struct {
	db       *dbpg.DB
	tx       *Coordinator
	strategy retry.Strategy
}

func NewDueRepo(db *dbpg.DB, tx *Coordinator) *DueRepository {
	return &DueRepository{
		db:       db,
		tx:       tx,
		strategy: defaultStrategy(),
	}
}

// insertDueTx creates the due and applies the paired balance mutations:
// user's dues balance and the event's generated total grow by the amount,
// and the participant row is flagged as owing. Shared with the roster
// transactions that create dues on approval.
func insertDueTx(ctx context.Context, tx *sql.Tx, due *domain.Due) error {
	insert := `INSERT INTO dues (id, user_id, event_id, amount, status, created_at)
			   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insert,
		due.ID, due.UserID, due.EventID, due.Amount, due.Status, due.CreatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDueExists
		}
		return fmt.Errorf("insert due: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET dues = dues + $2 WHERE id = $1`,
		due.UserID, due.Amount,
	); err != nil {
		return fmt.Errorf("increment user dues: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE events SET total_dues_generated = total_dues_generated + $2, updated_at = now() WHERE id = $1`,
		due.EventID, due.Amount,
	); err != nil {
		return fmt.Errorf("increment dues generated: %w", err)
	}

	flag := `UPDATE participants SET has_pending_dues = true, updated_at = now()
			 WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)`
	if _, err := tx.ExecContext(ctx, flag, due.EventID, due.UserID,
		pq.Array(domain.ActiveParticipantStatuses)); err != nil {
		return fmt.Errorf("flag participant dues: %w", err)
	}

	return nil
}

// settleDueTx applies the balance side of one cleared due: the user's dues
// balance shrinks (floored at zero to tolerate reconciliation drift), the
// event's cleared total grows, and the participant row is marked settled.
func settleDueTx(ctx context.Context, tx *sql.Tx, d *domain.Due) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET dues = GREATEST(dues - $2, 0) WHERE id = $1`,
		d.UserID, d.Amount,
	); err != nil {
		return fmt.Errorf("decrement user dues: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE events SET total_dues_cleared = total_dues_cleared + $2, updated_at = now() WHERE id = $1`,
		d.EventID, d.Amount,
	); err != nil {
		return fmt.Errorf("increment dues cleared: %w", err)
	}

	mark := `UPDATE participants SET has_pending_dues = false, dues_cleared = true, updated_at = now()
			 WHERE event_id = $1 AND user_id = $2 AND status = ANY($3)`
	if _, err := tx.ExecContext(ctx, mark, d.EventID, d.UserID,
		pq.Array(domain.ActiveParticipantStatuses)); err != nil {
		return fmt.Errorf("mark participant settled: %w", err)
	}

	return nil
}

func (r *DueRepository) Create(ctx context.Context, due *domain.Due) error {
	return r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		return insertDueTx(ctx, tx, due)
	})
}

func (r *DueRepository) GetByID(ctx context.Context, id string) (*domain.Due, error) {
	query := `SELECT ` + dueColumns + ` FROM dues WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get due: %w", err)
	}

	var d domain.Due
	if err = row.Scan(&d.ID, &d.UserID, &d.EventID, &d.Amount, &d.Status,
		&d.ClearedVia, &d.ReferenceID, &d.CreatedAt, &d.ClearedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDueNotFound
		}
		return nil, fmt.Errorf("scan due: %w", err)
	}

	return &d, nil
}

func (r *DueRepository) Clear(ctx context.Context, dueID string, via domain.ClearedVia, referenceID string) (*domain.Due, error) {
	var cleared *domain.Due

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		query := `UPDATE dues SET status = $2, cleared_via = $3, reference_id = NULLIF($4, ''), cleared_at = now()
				  WHERE id = $1 AND status = $5
				  RETURNING ` + dueColumns
		row := tx.QueryRowContext(ctx, query, dueID, domain.DueStatusCleared, via, referenceID, domain.DueStatusPending)

		var d domain.Due
		err := row.Scan(&d.ID, &d.UserID, &d.EventID, &d.Amount, &d.Status,
			&d.ClearedVia, &d.ReferenceID, &d.CreatedAt, &d.ClearedAt)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("clear due: %w", err)
			}
			var status domain.DueStatus
			if scanErr := tx.QueryRowContext(ctx, `SELECT status FROM dues WHERE id = $1`, dueID).Scan(&status); scanErr != nil {
				return domain.ErrDueNotFound
			}
			return domain.ErrDueAlreadyCleared
		}

		if err = settleDueTx(ctx, tx, &d); err != nil {
			return err
		}

		cleared = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cleared, nil
}

// ClearMany settles every listed pending due in one transaction. Missing or
// already-cleared ids are counted as skipped, not failed, so retried client
// calls stay idempotent.
func (r *DueRepository) ClearMany(ctx context.Context, dueIDs []string, via domain.ClearedVia, referenceID string) ([]*domain.Due, int, error) {
	var cleared []*domain.Due

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		var err error
		cleared, err = clearManyTx(ctx, tx, dueIDs, "", via, referenceID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return cleared, len(dueIDs) - len(cleared), nil
}

// ClearManyWithCommission settles the user's listed dues out of their
// available commission balance instead of a gateway payment.
func (r *DueRepository) ClearManyWithCommission(ctx context.Context, userID string, dueIDs []string) ([]*domain.Due, int, error) {
	var cleared []*domain.Due

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		var available int64
		lock := `SELECT available_commission FROM users WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lock, userID).Scan(&available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("lock user finance: %w", err)
		}

		var err error
		cleared, err = clearManyTx(ctx, tx, dueIDs, userID, domain.ClearedViaCommission, "commission-balance")
		if err != nil {
			return err
		}

		var total int64
		for _, d := range cleared {
			total += d.Amount
		}
		if total > available {
			return domain.ErrInsufficientCommission
		}

		if _, err = tx.ExecContext(ctx,
			`UPDATE users SET available_commission = available_commission - $2 WHERE id = $1`,
			userID, total,
		); err != nil {
			return fmt.Errorf("debit commission balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return cleared, len(dueIDs) - len(cleared), nil
}

func clearManyTx(ctx context.Context, tx *sql.Tx, dueIDs []string, userID string, via domain.ClearedVia, referenceID string) ([]*domain.Due, error) {
	query := `UPDATE dues SET status = $2, cleared_via = $3, reference_id = NULLIF($4, ''), cleared_at = now()
			  WHERE id = ANY($1) AND status = $5 AND ($6 = '' OR user_id = $6)
			  RETURNING ` + dueColumns
	rows, err := tx.QueryContext(ctx, query, pq.Array(dueIDs),
		domain.DueStatusCleared, via, referenceID, domain.DueStatusPending, userID)
	if err != nil {
		return nil, fmt.Errorf("clear dues: %w", err)
	}
	defer rows.Close()

	var cleared []*domain.Due
	for rows.Next() {
		var d domain.Due
		if err = rows.Scan(&d.ID, &d.UserID, &d.EventID, &d.Amount, &d.Status,
			&d.ClearedVia, &d.ReferenceID, &d.CreatedAt, &d.ClearedAt); err != nil {
			return nil, fmt.Errorf("scan cleared due: %w", err)
		}
		cleared = append(cleared, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, d := range cleared {
		if err = settleDueTx(ctx, tx, d); err != nil {
			return nil, err
		}
	}

	return cleared, nil
}

func (r *DueRepository) ListPendingByUser(ctx context.Context, userID string) ([]*domain.Due, error) {
	query := `SELECT ` + dueColumns + ` FROM dues
			  WHERE user_id = $1 AND status = $2
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, domain.DueStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending dues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Due
	for rows.Next() {
		var d domain.Due
		if err = rows.Scan(&d.ID, &d.UserID, &d.EventID, &d.Amount, &d.Status,
			&d.ClearedVia, &d.ReferenceID, &d.CreatedAt, &d.ClearedAt); err != nil {
			return nil, fmt.Errorf("scan due: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *DueRepository) CreateOrder(ctx context.Context, o *domain.PaymentOrder) error {
	query := `INSERT INTO payment_orders (id, gateway_order_id, user_id, due_ids, amount,
				gateway_fee, gst, discount, payable, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		o.ID, o.GatewayOrderID, o.UserID, pq.Array(o.DueIDs), o.Amount,
		o.GatewayFee, o.GST, o.Discount, o.Payable, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment order: %w", err)
	}

	return nil
}

func (r *DueRepository) GetOrderByGatewayID(ctx context.Context, gatewayOrderID string) (*domain.PaymentOrder, error) {
	query := `SELECT id, gateway_order_id, gateway_payment_id, user_id, due_ids, amount,
				gateway_fee, gst, discount, payable, status, created_at, updated_at
			  FROM payment_orders
			  WHERE gateway_order_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, gatewayOrderID)
	if err != nil {
		return nil, fmt.Errorf("get payment order: %w", err)
	}

	var (
		o      domain.PaymentOrder
		dueIDs pq.StringArray
	)
	if err = row.Scan(&o.ID, &o.GatewayOrderID, &o.GatewayPaymentID, &o.UserID, &dueIDs,
		&o.Amount, &o.GatewayFee, &o.GST, &o.Discount, &o.Payable,
		&o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentOrderNotFound
		}
		return nil, fmt.Errorf("scan payment order: %w", err)
	}
	o.DueIDs = dueIDs

	return &o, nil
}

func (r *DueRepository) MarkOrder(ctx context.Context, orderID string, status domain.PaymentOrderStatus, gatewayPaymentID string) error {
	query := `UPDATE payment_orders
			  SET status = $2, gateway_payment_id = NULLIF($3, ''), updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, orderID, status, gatewayPaymentID, domain.PaymentOrderStatusCreated)
	if err != nil {
		return fmt.Errorf("mark payment order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.PaymentOrderStatus
		scanErr := r.db.Master.QueryRowContext(ctx, `SELECT status FROM payment_orders WHERE id = $1`, orderID).Scan(&current)
		if scanErr != nil {
			return domain.ErrPaymentOrderNotFound
		}
		return domain.ErrAlreadyProcessed
	}

	return nil
}
