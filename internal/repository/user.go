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

const userColumns = `id, username, gender, date_of_birth, latitude, longitude, verified,
			events_joined, dues, pending_commission, available_commission,
			total_earned, total_withdrawn, telegram_chat_id, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u        domain.User
		lat, lng sql.NullFloat64
	)
	err := row.Scan(&u.ID, &u.Username, &u.Gender, &u.DateOfBirth, &lat, &lng, &u.Verified,
		&u.EventsJoined, &u.Finance.Dues, &u.Finance.PendingCommission,
		&u.Finance.AvailableCommission, &u.Finance.TotalEarned, &u.Finance.TotalWithdrawn,
		&u.TelegramChatID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		u.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
	}

	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, gender, date_of_birth, latitude, longitude, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var lat, lng *float64
	if user.Location != nil {
		lat, lng = &user.Location.Lat, &user.Location.Lng
	}

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Username, user.Gender, user.DateOfBirth, lat, lng,
		user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetFinance(ctx context.Context, userID string) (*domain.Finance, error) {
	query := `SELECT dues, pending_commission, available_commission, total_earned, total_withdrawn
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get finance: %w", err)
	}

	var f domain.Finance
	if err = row.Scan(&f.Dues, &f.PendingCommission, &f.AvailableCommission,
		&f.TotalEarned, &f.TotalWithdrawn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan finance: %w", err)
	}

	return &f, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

// ReconcileDues repairs users whose dues balance no longer matches the sum
// of their pending due records. The balance invariant is enforced by the
// settlement transactions; this catches drift after manual intervention or
// a partially applied migration.
func (r *UserRepository) ReconcileDues(ctx context.Context) (int, error) {
	query := `UPDATE users u
			  SET dues = COALESCE(s.total, 0)
			  FROM users u2
			  LEFT JOIN (
				  SELECT user_id, SUM(amount) AS total
				  FROM dues
				  WHERE status = 'pending'
				  GROUP BY user_id
			  ) s ON s.user_id = u2.id
			  WHERE u.id = u2.id AND u.dues <> COALESCE(s.total, 0)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("reconcile dues: %w", err)
	}

	fixed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reconcile rows affected: %w", err)
	}

	return int(fixed), nil
}
