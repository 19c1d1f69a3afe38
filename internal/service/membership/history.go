package membership

import (
	"context"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// GetSwitchHistory returns the calling user's switch records, newest
// first, with user and batch names resolved for display.
func (s *Service) GetSwitchHistory(ctx context.Context) ([]domain.SwitchRecordDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.ledger.ListByUser(ctx, userID)
}

// GetSwitchCount returns how many times the calling user has switched
// batches over their lifetime. The count only grows; suspension does
// not reset it.
func (s *Service) GetSwitchCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	return s.ledger.CountByUser(ctx, userID)
}
