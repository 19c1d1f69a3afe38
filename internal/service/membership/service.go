// Package membership implements the student-facing batch membership
// logic: self-service batch switches, personal switch history and the
// active batch listing.
package membership

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
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, batchID uuid.UUID, now time.Time) (*domain.User, error)
}

type batchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	ListActive(ctx context.Context) ([]domain.Batch, error)
}

type switchLedger interface {
	Append(ctx context.Context, rec *domain.SwitchRecord) (*domain.SwitchRecord, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the batch membership business logic.
type Service struct {
	log     *slog.Logger
	users   userRepo
	batches batchRepo
	ledger  switchLedger
	tx      txManager
}

// NewService creates a new Membership service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	batches batchRepo,
	ledger switchLedger,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "membership"),
		users:   users,
		batches: batches,
		ledger:  ledger,
		tx:      tx,
	}
}

// ListActiveBatches returns the batches a student may switch into.
func (s *Service) ListActiveBatches(ctx context.Context) ([]domain.Batch, error) {
	return s.batches.ListActive(ctx)
}
