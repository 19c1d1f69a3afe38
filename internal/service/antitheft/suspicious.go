package antitheft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

// GetUsersWithMultipleSwitches returns students whose lifetime switch
// count is at least minSwitches, ordered by count descending and user id
// ascending (admin only). Passing minSwitches <= 0 applies the configured
// threshold. Operators never appear in the report regardless of their
// own ledger rows.
func (s *Service) GetUsersWithMultipleSwitches(ctx context.Context, minSwitches int) ([]domain.SuspiciousUser, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if minSwitches <= 0 {
		minSwitches = s.cfg.MinSwitches
	}

	counts, err := s.ledger.CountsPerUser(ctx, minSwitches)
	if err != nil {
		return nil, fmt.Errorf("antitheft.GetUsersWithMultipleSwitches: %w", err)
	}
	if len(counts) == 0 {
		return []domain.SuspiciousUser{}, nil
	}

	ids := make([]uuid.UUID, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.UserID)
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("antitheft.GetUsersWithMultipleSwitches: %w", err)
	}

	usersByID := make(map[uuid.UUID]domain.User, len(users))
	batchIDs := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
		if u.CurrentBatchID != nil {
			batchIDs = append(batchIDs, *u.CurrentBatchID)
		}
	}

	batchNames, err := s.batchNames(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("antitheft.GetUsersWithMultipleSwitches: %w", err)
	}

	// counts arrive pre-sorted; skipping rows preserves the order.
	report := make([]domain.SuspiciousUser, 0, len(counts))
	for _, c := range counts {
		u, ok := usersByID[c.UserID]
		if !ok {
			// Ledger rows outlive hard-deleted users; nothing to report on.
			continue
		}
		if u.Role.IsAdmin() {
			continue
		}

		batchName := domain.FromBatchNameNone
		if u.CurrentBatchID != nil {
			batchName = domain.BatchNameUnknown
			if name, ok := batchNames[*u.CurrentBatchID]; ok {
				batchName = name
			}
		}

		report = append(report, domain.SuspiciousUser{
			UserID:      u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			BatchName:   batchName,
			SwitchCount: c.Count,
			IsSuspended: u.IsSuspended,
		})
	}

	return report, nil
}

func (s *Service) batchNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	batches, err := s.batches.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve batch names: %w", err)
	}

	names := make(map[uuid.UUID]string, len(batches))
	for _, b := range batches {
		names[b.ID] = b.Name
	}
	return names, nil
}
