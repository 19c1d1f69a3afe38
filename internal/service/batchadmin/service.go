// Package batchadmin implements batch lifecycle management for
// institute operators.
package batchadmin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/pkg/ctxutil"
)

type batchRepo interface {
	Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	List(ctx context.Context) ([]domain.Batch, error)
}

// Service implements the batch administration business logic.
type Service struct {
	log     *slog.Logger
	batches batchRepo
}

// NewService creates a new BatchAdmin service.
func NewService(logger *slog.Logger, batches batchRepo) *Service {
	return &Service{
		log:     logger.With("service", "batchadmin"),
		batches: batches,
	}
}

// CreateBatchInput holds the parameters for creating a batch.
type CreateBatchInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i *CreateBatchInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateBatch opens a new batch for enrollment (admin only).
// Active batch names are unique; a duplicate returns domain.ErrAlreadyExists.
func (s *Service) CreateBatch(ctx context.Context, input CreateBatchInput) (*domain.Batch, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	batch, err := s.batches.Create(ctx, &domain.Batch{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("batchadmin.CreateBatch: %w", err)
	}

	s.log.InfoContext(ctx, "batch created", slog.String("batch_id", batch.ID.String()), slog.String("name", batch.Name))

	return batch, nil
}

// DeactivateBatch closes a batch to new members (admin only). Existing
// members stay assigned and the ledger keeps resolving the name.
func (s *Service) DeactivateBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	batch, err := s.batches.Deactivate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("batchadmin.DeactivateBatch: %w", err)
	}

	s.log.InfoContext(ctx, "batch deactivated", slog.String("batch_id", id.String()))

	return batch, nil
}

// ListBatches returns all batches including deactivated ones (admin only).
func (s *Service) ListBatches(ctx context.Context) ([]domain.Batch, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	return s.batches.List(ctx)
}
