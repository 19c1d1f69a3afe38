// Package switchlog implements the append-only batch-switch ledger using
// PostgreSQL. Rows are only ever inserted; counts and history are derived on
// read. Enrichment joins are LEFT JOINs so history stays readable even when a
// batch row was removed out of band.
package switchlog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/coachdesk/coachdesk-backend/internal/adapter/postgres"
	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// Repo provides switch ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new switch ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const appendSQL = `
INSERT INTO switch_history (id, user_id, from_batch_id, to_batch_id, actor_id, switched_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, from_batch_id, to_batch_id, actor_id, switched_at`

const countByUserSQL = `SELECT count(*) FROM switch_history WHERE user_id = $1`

const countsPerUserSQL = `
SELECT user_id, count(*) AS switch_count
FROM switch_history
GROUP BY user_id
HAVING count(*) >= $1
ORDER BY switch_count DESC, user_id ASC`

// Append inserts one ledger row and returns the persisted record.
// There is no update or delete counterpart by design.
func (r *Repo) Append(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var persisted domain.SwitchRecord
	err := querier.QueryRow(ctx, appendSQL,
		rec.ID, rec.UserID, rec.FromBatchID, rec.ToBatchID, rec.ActorID, rec.SwitchedAt,
	).Scan(
		&persisted.ID, &persisted.UserID, &persisted.FromBatchID,
		&persisted.ToBatchID, &persisted.ActorID, &persisted.SwitchedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "switch_record", rec.ID)
	}

	return &persisted, nil
}

// CountByUser returns the user's lifetime switch count.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count switch_history by user: %w", err)
	}

	return count, nil
}

// CountsPerUser returns ledger-derived switch counts for every user with at
// least minSwitches entries, ordered by count DESC then user_id ASC. This is
// a full ledger scan; acceptable at expected scale (see the anti-theft
// evaluator for the read-side rationale).
func (r *Repo) CountsPerUser(ctx context.Context, minSwitches int) ([]domain.UserSwitchCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countsPerUserSQL, minSwitches)
	if err != nil {
		return nil, fmt.Errorf("counts per user: %w", err)
	}
	defer rows.Close()

	counts := []domain.UserSwitchCount{}
	for rows.Next() {
		var c domain.UserSwitchCount
		if err := rows.Scan(&c.UserID, &c.Count); err != nil {
			return nil, fmt.Errorf("scan switch count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate switch counts: %w", err)
	}

	return counts, nil
}

// ListByUser returns one user's enriched history, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error) {
	query := detailQuery().Where(sq.Eq{"sh.user_id": userID})
	return r.listDetails(ctx, query)
}

// ListAll returns the global enriched feed across all users, newest first,
// capped at limit.
func (r *Repo) ListAll(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error) {
	query := detailQuery().Limit(uint64(limit))
	return r.listDetails(ctx, query)
}

// detailQuery builds the enrichment join shared by the per-user and global
// history reads. Batch names resolve through LEFT JOINs; the user join is
// INNER because users are never hard-deleted by this subsystem.
func detailQuery() sq.SelectBuilder {
	return psql.
		Select(
			"sh.id", "sh.user_id", "sh.from_batch_id", "sh.to_batch_id",
			"sh.actor_id", "sh.switched_at",
			"u.name", "u.email", "fb.name", "tb.name",
		).
		From("switch_history sh").
		Join("users u ON u.id = sh.user_id").
		LeftJoin("batches fb ON fb.id = sh.from_batch_id").
		LeftJoin("batches tb ON tb.id = sh.to_batch_id").
		OrderBy("sh.switched_at DESC")
}

func (r *Repo) listDetails(ctx context.Context, query sq.SelectBuilder) ([]domain.SwitchRecordDetail, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build switch_history query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list switch_history: %w", err)
	}
	defer rows.Close()

	details := []domain.SwitchRecordDetail{}
	for rows.Next() {
		var (
			d             domain.SwitchRecordDetail
			fromBatchName *string
			toBatchName   *string
		)
		err := rows.Scan(
			&d.ID, &d.UserID, &d.FromBatchID, &d.ToBatchID,
			&d.ActorID, &d.SwitchedAt,
			&d.UserName, &d.UserEmail, &fromBatchName, &toBatchName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan switch_record: %w", err)
		}

		d.FromBatchName = resolveFromName(d.FromBatchID, fromBatchName)
		d.ToBatchName = resolveToName(toBatchName)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate switch_history: %w", err)
	}

	return details, nil
}

// resolveFromName distinguishes "never had a batch" from "batch row gone".
func resolveFromName(fromBatchID *uuid.UUID, name *string) string {
	if fromBatchID == nil {
		return domain.FromBatchNameNone
	}
	if name == nil {
		return domain.BatchNameUnknown
	}
	return *name
}

func resolveToName(name *string) string {
	if name == nil {
		return domain.BatchNameUnknown
	}
	return *name
}
