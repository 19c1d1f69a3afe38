// Package batch implements the Batch repository using PostgreSQL.
// Batches are never hard-deleted by this service; deactivation keeps the
// switch ledger resolvable.
package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/coachdesk/coachdesk-backend/internal/adapter/postgres"
	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// Repo provides batch persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new batch repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const batchColumns = `id, name, is_active, created_at`

const getByIDSQL = `
SELECT ` + batchColumns + `
FROM batches
WHERE id = $1`

const listSQL = `
SELECT ` + batchColumns + `
FROM batches
ORDER BY name ASC`

const listActiveSQL = `
SELECT ` + batchColumns + `
FROM batches
WHERE is_active
ORDER BY name ASC`

const getByIDsSQL = `
SELECT ` + batchColumns + `
FROM batches
WHERE id = ANY($1::uuid[])`

const createSQL = `
INSERT INTO batches (id, name, is_active, created_at)
VALUES ($1, $2, true, $3)
RETURNING ` + batchColumns

const deactivateSQL = `
UPDATE batches
SET is_active = false
WHERE id = $1
RETURNING ` + batchColumns

// GetByID returns a batch by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var b domain.Batch
	err := querier.QueryRow(ctx, getByIDSQL, id).
		Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "batch", id)
	}

	return &b, nil
}

// List returns all batches, active and deactivated, ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Batch, error) {
	return r.list(ctx, listSQL)
}

// ListActive returns only batches accepting new members, ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Batch, error) {
	return r.list(ctx, listActiveSQL)
}

// GetByIDs returns the batches matching the given ids. Missing ids are
// silently omitted from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Batch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get batches by ids: %w", err)
	}
	defer rows.Close()

	batches := []domain.Batch{}
	for rows.Next() {
		var b domain.Batch
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}

	return batches, nil
}

// Create inserts a new active batch.
// Returns domain.ErrAlreadyExists if an active batch with the same name exists.
func (r *Repo) Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Batch
	err := querier.QueryRow(ctx, createSQL, b.ID, b.Name, b.CreatedAt).
		Scan(&created.ID, &created.Name, &created.IsActive, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "batch", b.ID)
	}

	return &created, nil
}

// Deactivate marks the batch as no longer accepting members.
// Returns domain.ErrNotFound if the batch does not exist.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var b domain.Batch
	err := querier.QueryRow(ctx, deactivateSQL, id).
		Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "batch", id)
	}

	return &b, nil
}

func (r *Repo) list(ctx context.Context, sql string) ([]domain.Batch, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	batches := []domain.Batch{}
	for rows.Next() {
		var b domain.Batch
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}

	return batches, nil
}
