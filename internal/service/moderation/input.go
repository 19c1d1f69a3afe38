package moderation

import (
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// SuspendInput holds the parameters for suspending a student.
type SuspendInput struct {
	UserID uuid.UUID
	Reason string
}

// Validate checks all fields and collects all errors.
func (i *SuspendInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if len(i.Reason) > 1000 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long (max 1000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UnsuspendInput holds the parameters for lifting a suspension.
// BatchID is the batch the operator assigns the student to; the
// assignment is mandatory because unsuspended accounts come back locked.
type UnsuspendInput struct {
	UserID  uuid.UUID
	BatchID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UnsuspendInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.BatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
