// Package user implements the membership store's user repository using
// PostgreSQL. The switch path mutates only current_batch_id; suspension and
// lock fields are mutated only by moderation operations.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/coachdesk/coachdesk-backend/internal/adapter/postgres"
	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, role, current_batch_id, is_suspended, suspend_reason, batch_locked, created_at, updated_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// getByIDForUpdateSQL takes a row lock so two concurrent switches for the same
// user serialize on the membership row. Only meaningful inside a transaction.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByIDsSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = ANY($1::uuid[])`

const updateBatchSQL = `
UPDATE users
SET current_batch_id = $2, updated_at = $3
WHERE id = $1
RETURNING ` + userColumns

const suspendSQL = `
UPDATE users
SET is_suspended = true, suspend_reason = $2, updated_at = $3
WHERE id = $1
RETURNING ` + userColumns

// unsuspendSQL lifts the suspension, assigns the operator-chosen batch, and
// permanently locks self-service switching for the account.
const unsuspendSQL = `
UPDATE users
SET is_suspended = false, suspend_reason = NULL, current_batch_id = $2,
    batch_locked = true, updated_at = $3
WHERE id = $1
RETURNING ` + userColumns

const createSQL = `
INSERT INTO users (id, email, name, role, current_batch_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetByIDForUpdate returns a user by primary key with a FOR UPDATE row lock.
// Must be called inside a TxManager transaction; the lock is held until commit.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, getByIDForUpdateSQL, id)
}

// GetByIDs returns users for the given IDs in unspecified order.
// Missing IDs are silently omitted.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// UpdateBatch sets the user's current batch assignment.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdateBatch(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error) {
	return r.getOne(ctx, updateBatchSQL, id, batchID, now)
}

// Suspend marks the user suspended with the given reason.
func (r *Repo) Suspend(ctx context.Context, id uuid.UUID, reason string, now time.Time) (*domain.User, error) {
	return r.getOne(ctx, suspendSQL, id, reason, now)
}

// Unsuspend clears the suspension, assigns batchID, and sets batch_locked.
func (r *Repo) Unsuspend(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error) {
	return r.getOne(ctx, unsuspendSQL, id, batchID, now)
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Name, u.Role.String(), u.CurrentBatchID, u.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &created, nil
}

func (r *Repo) getOne(ctx context.Context, sql string, id uuid.UUID, args ...any) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, sql, append([]any{id}, args...)...)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &role, &u.CurrentBatchID,
		&u.IsSuspended, &u.SuspendReason, &u.BatchLocked,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
}
