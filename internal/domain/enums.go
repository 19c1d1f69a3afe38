package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// MobilityState describes where a user stands in the batch-mobility lifecycle.
// Derived from user flags, never stored directly.
type MobilityState string

const (
	// MobilityUnassigned: no batch yet; the first successful switch assigns one.
	MobilityUnassigned MobilityState = "UNASSIGNED"
	// MobilityUnlocked: has a batch and may self-switch.
	MobilityUnlocked MobilityState = "UNLOCKED"
	// MobilitySuspended: blocked from switching until an operator intervenes.
	MobilitySuspended MobilityState = "SUSPENDED"
	// MobilityLocked: reassigned by an operator after a suspension; self-service
	// switching is permanently disabled.
	MobilityLocked MobilityState = "LOCKED"
)

func (s MobilityState) String() string { return string(s) }
