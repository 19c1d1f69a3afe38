package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// SuspendUser blocks a student from switching batches (admin only).
// Suspension freezes mobility but keeps the current batch assignment
// and the ledger untouched; the switch count keeps its value.
func (s *Service) SuspendUser(ctx context.Context, input SuspendInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var suspended *domain.User
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByIDForUpdate(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if user.Role.IsAdmin() {
			return fmt.Errorf("cannot suspend an administrator: %w", domain.ErrForbidden)
		}
		if user.IsSuspended {
			return fmt.Errorf("user already suspended: %w", domain.ErrConflict)
		}

		suspended, err = s.users.Suspend(txCtx, input.UserID, input.Reason, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("suspend user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "user suspended",
		slog.String("target_user_id", input.UserID.String()),
		slog.String("reason", input.Reason),
	)

	return suspended, nil
}
