package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// SwitchBatch moves the calling student into the requested batch.
//
// The ledger row and the membership update commit in a single
// transaction, with the user's row locked for the duration so
// concurrent switches by the same user serialize. Requesting the batch
// the user is already in is a no-op and writes nothing.
func (s *Service) SwitchBatch(ctx context.Context, input SwitchInput) (*SwitchResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.switchOnce(ctx, userID, input.BatchID)
	if errors.Is(err, domain.ErrConflict) {
		// Serialization failure from a concurrent switch; the row lock
		// makes a single retry safe and almost always sufficient.
		s.log.DebugContext(ctx, "retrying batch switch after conflict", "user_id", userID)
		result, err = s.switchOnce(ctx, userID, input.BatchID)
	}
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.log.InfoContext(ctx, "batch switched",
			"user_id", userID,
			"batch_id", input.BatchID,
		)
	}

	return result, nil
}

func (s *Service) switchOnce(ctx context.Context, userID, batchID uuid.UUID) (*SwitchResult, error) {
	var result *SwitchResult

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if user.IsSuspended {
			return fmt.Errorf("account suspended: %w", domain.ErrForbidden)
		}
		if user.BatchLocked {
			return fmt.Errorf("batch changes locked: %w", domain.ErrForbidden)
		}

		batch, err := s.batches.GetByID(txCtx, batchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}
		if !batch.IsActive {
			return fmt.Errorf("batch %q is not accepting members: %w", batch.Name, domain.ErrInvalidTarget)
		}

		if user.IsInBatch(batchID) {
			result = &SwitchResult{Changed: false, Message: "already in this batch"}
			return nil
		}

		now := time.Now().UTC()

		if _, err := s.ledger.Append(txCtx, &domain.SwitchRecord{
			ID:          uuid.New(),
			UserID:      userID,
			FromBatchID: user.CurrentBatchID,
			ToBatchID:   batchID,
			SwitchedAt:  now,
		}); err != nil {
			return fmt.Errorf("append switch record: %w", err)
		}

		if _, err := s.users.UpdateBatch(txCtx, userID, batchID, now); err != nil {
			return fmt.Errorf("update membership: %w", err)
		}

		result = &SwitchResult{Changed: true, Message: fmt.Sprintf("switched to %s", batch.Name)}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return result, nil
}
