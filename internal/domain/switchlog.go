package domain

import (
	"time"

	"github.com/google/uuid"
)

// Display fallbacks for ledger enrichment. FromBatchNameNone is used when the
// entry predates any assignment; BatchNameUnknown when the batch row was
// hard-deleted outside this subsystem.
const (
	FromBatchNameNone = "No Batch"
	BatchNameUnknown  = "Unknown"
)

// SwitchRecord is one row of the append-only batch-switch ledger.
// Rows are created exactly once per successful switch and never updated
// or deleted.
type SwitchRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FromBatchID *uuid.UUID // nil means the user had no batch before
	ToBatchID   uuid.UUID
	// ActorID is set when an operator forced the reassignment (unsuspend flow);
	// nil for student-initiated switches.
	ActorID    *uuid.UUID
	SwitchedAt time.Time
}

// SwitchRecordDetail is a ledger row enriched with display names for audit
// views. Name resolution happens at read time; missing referents fall back
// to FromBatchNameNone / BatchNameUnknown rather than failing the read.
type SwitchRecordDetail struct {
	SwitchRecord
	UserName      string
	UserEmail     string
	FromBatchName string
	ToBatchName   string
}

// SuspiciousUser is one row of the anti-theft report: a student whose
// lifetime switch count met the threshold, with enough context for an
// operator to decide on suspension.
type SuspiciousUser struct {
	UserID      uuid.UUID
	Name        string
	Email       string
	Role        UserRole
	BatchName   string
	SwitchCount int
	IsSuspended bool
}

// UserSwitchCount pairs a user with their ledger-derived switch count.
type UserSwitchCount struct {
	UserID uuid.UUID
	Count  int
}
