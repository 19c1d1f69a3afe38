package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBatch creates an active batch with a unique name.
func SeedBatch(t *testing.T, pool *pgxpool.Pool) domain.Batch {
	t.Helper()
	return seedBatch(t, pool, true)
}

// SeedInactiveBatch creates a deactivated batch.
func SeedInactiveBatch(t *testing.T, pool *pgxpool.Pool) domain.Batch {
	t.Helper()
	return seedBatch(t, pool, false)
}

func seedBatch(t *testing.T, pool *pgxpool.Pool, active bool) domain.Batch {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Batch{
		ID:        uuid.New(),
		Name:      "Batch " + uniqueSuffix(),
		IsActive:  active,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO batches (id, name, is_active, created_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, b.IsActive, b.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBatch insert: %v", err)
	}

	return b
}

// SeedStudent creates a student user with no batch assignment.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleStudent)
}

// SeedAdmin creates an admin user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedUser insert: %v", err)
	}

	return user
}

// AssignBatch points the user's current_batch_id at the given batch.
func AssignBatch(t *testing.T, pool *pgxpool.Pool, userID, batchID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE users SET current_batch_id = $2 WHERE id = $1`, userID, batchID)
	if err != nil {
		t.Fatalf("testhelper: AssignBatch: %v", err)
	}
}

// SuspendUser flips the suspension flag directly (bypassing the service).
func SuspendUser(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, reason string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE users SET is_suspended = true, suspend_reason = $2 WHERE id = $1`,
		userID, reason)
	if err != nil {
		t.Fatalf("testhelper: SuspendUser: %v", err)
	}
}

// SeedSwitchRecord appends a raw ledger row at the given timestamp.
func SeedSwitchRecord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, from *uuid.UUID, to uuid.UUID, at time.Time) domain.SwitchRecord {
	t.Helper()

	rec := domain.SwitchRecord{
		ID:          uuid.New(),
		UserID:      userID,
		FromBatchID: from,
		ToBatchID:   to,
		SwitchedAt:  at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO switch_history (id, user_id, from_batch_id, to_batch_id, switched_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.FromBatchID, rec.ToBatchID, rec.SwitchedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSwitchRecord insert: %v", err)
	}

	return rec
}

// LedgerCount returns the total number of ledger rows for a user.
func LedgerCount(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM switch_history WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		t.Fatalf("testhelper: LedgerCount: %v", err)
	}
	return count
}
