package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// UnsuspendUser lifts a suspension and reassigns the student to the
// given batch (admin only). The account comes back with batch changes
// locked, so any further moves require an operator. When the forced
// assignment actually changes the batch, a ledger row is written with
// the operator recorded as the actor, in the same transaction as the
// membership update.
func (s *Service) UnsuspendUser(ctx context.Context, input UnsuspendInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var unsuspended *domain.User
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByIDForUpdate(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if !user.IsSuspended {
			return fmt.Errorf("user is not suspended: %w", domain.ErrConflict)
		}

		batch, err := s.batches.GetByID(txCtx, input.BatchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}
		if !batch.IsActive {
			return fmt.Errorf("batch %q is not accepting members: %w", batch.Name, domain.ErrInvalidTarget)
		}

		now := time.Now().UTC()

		if !user.IsInBatch(input.BatchID) {
			if _, err := s.ledger.Append(txCtx, &domain.SwitchRecord{
				ID:          uuid.New(),
				UserID:      input.UserID,
				FromBatchID: user.CurrentBatchID,
				ToBatchID:   input.BatchID,
				ActorID:     &actorID,
				SwitchedAt:  now,
			}); err != nil {
				return fmt.Errorf("append switch record: %w", err)
			}
		}

		unsuspended, err = s.users.Unsuspend(txCtx, input.UserID, input.BatchID, now)
		if err != nil {
			return fmt.Errorf("unsuspend user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "user unsuspended",
		slog.String("target_user_id", input.UserID.String()),
		slog.String("batch_id", input.BatchID.String()),
	)

	return unsuspended, nil
}
