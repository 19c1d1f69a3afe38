package membership

import (
	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

// SwitchInput holds the parameters for a batch switch request.
type SwitchInput struct {
	BatchID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *SwitchInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
