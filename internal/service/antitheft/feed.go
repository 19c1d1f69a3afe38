package antitheft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// GetAllSwitchHistory returns the institute-wide switch feed, newest
// first, with user and batch names resolved (admin only). Passing
// limit <= 0 applies the configured feed limit.
func (s *Service) GetAllSwitchHistory(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = s.cfg.HistoryFeedLimit
	}

	records, err := s.ledger.ListAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("antitheft.GetAllSwitchHistory: %w", err)
	}

	return records, nil
}

// GetUserSwitchHistory returns one user's switch records for operator
// review, newest first (admin only).
func (s *Service) GetUserSwitchHistory(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	records, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("antitheft.GetUserSwitchHistory: %w", err)
	}

	return records, nil
}
