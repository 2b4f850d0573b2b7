package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const commissionColumns = `id, admin_id, event_id, status, total_dues_generated,
			admin_share, platform_share, participants_count, participants_due_cleared,
			created_at, updated_at`

type CommissionRepository struct {
	db       *dbpg.DB
	tx       *Coordinator
	strategy retry.Strategy
}

func NewCommissionRepo(db *dbpg.DB, tx *Coordinator) *CommissionRepository {
	return &CommissionRepository{
		db:       db,
		tx:       tx,
		strategy: defaultStrategy(),
	}
}

func scanCommission(row rowScanner) (*domain.Commission, error) {
	var c domain.Commission
	err := row.Scan(&c.ID, &c.AdminID, &c.EventID, &c.Status, &c.TotalDuesGenerated,
		&c.AdminShare, &c.PlatformShare, &c.ParticipantsCount, &c.ParticipantsDueCleared,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementCleared is the only path by which a pending commission becomes
// spendable. The guarded UPDATE ... RETURNING serializes concurrent
// due-clearing calls for the same event: exactly one of them observes the
// counter reaching participants_count and performs the promotion.
func (r *CommissionRepository) IncrementCleared(ctx context.Context, eventID string) (*domain.Commission, bool, error) {
	var (
		commission *domain.Commission
		promoted   bool
	)

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		bump := `UPDATE commissions
				 SET participants_due_cleared = participants_due_cleared + 1, updated_at = now()
				 WHERE event_id = $1 AND status = $2
				 RETURNING ` + commissionColumns
		row := tx.QueryRowContext(ctx, bump, eventID, domain.CommissionStatusPending)

		c, err := scanCommission(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// No pending commission for this event: either not completed
				// yet or already promoted. Not an error.
				return nil
			}
			return fmt.Errorf("increment cleared: %w", err)
		}

		if c.ParticipantsDueCleared >= c.ParticipantsCount {
			if _, err = tx.ExecContext(ctx,
				`UPDATE commissions SET status = $2, updated_at = now() WHERE id = $1`,
				c.ID, domain.CommissionStatusAvailable,
			); err != nil {
				return fmt.Errorf("promote commission: %w", err)
			}

			release := `UPDATE users SET
						  pending_commission = GREATEST(pending_commission - $2, 0),
						  available_commission = available_commission + $2,
						  total_earned = total_earned + $2
						WHERE id = $1`
			if _, err = tx.ExecContext(ctx, release, c.AdminID, c.AdminShare); err != nil {
				return fmt.Errorf("release commission: %w", err)
			}

			c.Status = domain.CommissionStatusAvailable
			promoted = true
		}

		commission = c
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return commission, promoted, nil
}

func (r *CommissionRepository) GetByEvent(ctx context.Context, eventID string) (*domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get commission: %w", err)
	}

	c, err := scanCommission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommissionNotFound
		}
		return nil, fmt.Errorf("scan commission: %w", err)
	}

	return c, nil
}

func (r *CommissionRepository) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
			  WHERE admin_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// Withdraw debits the available balance. When the balance is fully drained
// the organizer's available commission records are swept to withdrawn.
func (r *CommissionRepository) Withdraw(ctx context.Context, userID string, amount, minWithdrawal int64) (*domain.Finance, error) {
	if amount < minWithdrawal {
		return nil, domain.ErrBelowMinWithdrawal
	}

	var finance *domain.Finance

	err := r.tx.Atomic(ctx, func(tx *sql.Tx) error {
		var available int64
		lock := `SELECT available_commission FROM users WHERE id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, lock, userID).Scan(&available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("lock user finance: %w", err)
		}

		if available < amount {
			return domain.ErrInsufficientCommission
		}

		debit := `UPDATE users SET
					available_commission = available_commission - $2,
					total_withdrawn = total_withdrawn + $2
				  WHERE id = $1
				  RETURNING dues, pending_commission, available_commission, total_earned, total_withdrawn`
		var f domain.Finance
		if err := tx.QueryRowContext(ctx, debit, userID, amount).
			Scan(&f.Dues, &f.PendingCommission, &f.AvailableCommission, &f.TotalEarned, &f.TotalWithdrawn); err != nil {
			return fmt.Errorf("debit withdrawal: %w", err)
		}

		if f.AvailableCommission == 0 {
			sweep := `UPDATE commissions SET status = $2, updated_at = now()
					  WHERE admin_id = $1 AND status = $3`
			if _, err := tx.ExecContext(ctx, sweep, userID,
				domain.CommissionStatusWithdrawn, domain.CommissionStatusAvailable); err != nil {
				return fmt.Errorf("sweep withdrawn commissions: %w", err)
			}
		}

		finance = &f
		return nil
	})
	if err != nil {
		return nil, err
	}

	return finance, nil
}
