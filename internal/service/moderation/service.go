// Package moderation implements the operator interventions of the
// anti-theft workflow: suspending a flagged student and lifting a
// suspension with a forced batch reassignment.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Suspend(ctx context.Context, id uuid.UUID, reason string, now time.Time) (*domain.User, error)
	Unsuspend(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error)
}

type batchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
}

type switchLedger interface {
	Append(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the moderation business logic.
type Service struct {
	log     *slog.Logger
	users   userRepo
	batches batchRepo
	ledger  switchLedger
	tx      txManager
}

// NewService creates a new Moderation service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	batches batchRepo,
	ledger switchLedger,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "moderation"),
		users:   users,
		batches: batches,
		ledger:  ledger,
		tx:      tx,
	}
}
