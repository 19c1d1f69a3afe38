// Package antitheft implements the batch-switch abuse monitoring used
// by institute operators: a report of students who switch batches
// suspiciously often, and the institute-wide switch history feed.
package antitheft

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type batchRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Batch, error)
}

type switchLedger interface {
	CountsPerUser(ctx context.Context, minSwitches int) ([]domain.UserSwitchCount, error)
	ListAll(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the anti-theft monitoring business logic.
type Service struct {
	log     *slog.Logger
	users   userRepo
	batches batchRepo
	ledger  switchLedger
	cfg     config.AntiTheftConfig
}

// NewService creates a new AntiTheft service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	batches batchRepo,
	ledger switchLedger,
	cfg config.AntiTheftConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "antitheft"),
		users:   users,
		batches: batches,
		ledger:  ledger,
		cfg:     cfg,
	}
}
