package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an institute member (student or operator).
// Batch assignment fields are owned by the membership store; suspension and
// lock fields are mutated only through moderation actions.
type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	Role           UserRole
	CurrentBatchID *uuid.UUID // nil means "unassigned"
	IsSuspended    bool
	SuspendReason  *string
	BatchLocked    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MobilityState derives the batch-mobility lifecycle state from the user's flags.
// Suspension takes precedence over the lock flag: a suspended user is SUSPENDED
// regardless of batch_locked, which only matters once the suspension is lifted.
func (u *User) MobilityState() MobilityState {
	switch {
	case u.IsSuspended:
		return MobilitySuspended
	case u.BatchLocked:
		return MobilityLocked
	case u.CurrentBatchID == nil:
		return MobilityUnassigned
	default:
		return MobilityUnlocked
	}
}

// CanSelfSwitch reports whether the student-initiated switch path is open.
func (u *User) CanSelfSwitch() bool {
	return !u.IsSuspended && !u.BatchLocked
}

// IsInBatch reports whether the user is currently assigned to the given batch.
func (u *User) IsInBatch(batchID uuid.UUID) bool {
	return u.CurrentBatchID != nil && *u.CurrentBatchID == batchID
}
