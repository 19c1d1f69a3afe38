package domain

import (
	"time"

	"github.com/google/uuid"
)

// Batch is a named cohort students belong to. Only active batches accept
// new members; deactivated batches are kept so history stays resolvable.
type Batch struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
