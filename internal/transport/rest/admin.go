package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/internal/service/batchadmin"
	"github.com/coachdesk/coachdesk-backend/internal/service/moderation"
)

type antiTheftService interface {
	GetUsersWithMultipleSwitches(ctx context.Context, minSwitches int) ([]domain.SuspiciousUser, error)
	GetAllSwitchHistory(ctx context.Context, limit int) ([]domain.SwitchRecordDetail, error)
	GetUserSwitchHistory(ctx context.Context, userID uuid.UUID) ([]domain.SwitchRecordDetail, error)
}

type moderationService interface {
	SuspendUser(ctx context.Context, input moderation.SuspendInput) (*domain.User, error)
	UnsuspendUser(ctx context.Context, input moderation.UnsuspendInput) (*domain.User, error)
}

type batchAdminService interface {
	CreateBatch(ctx context.Context, input batchadmin.CreateBatchInput) (*domain.Batch, error)
	DeactivateBatch(ctx context.Context, id uuid.UUID) (*domain.Batch, error)
	ListBatches(ctx context.Context) ([]domain.Batch, error)
}

// AdminHandler serves the operator REST endpoints.
type AdminHandler struct {
	antiTheft  antiTheftService
	moderation moderationService
	batches    batchAdminService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(antiTheft antiTheftService, mod moderationService, batches batchAdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		antiTheft:  antiTheft,
		moderation: mod,
		batches:    batches,
		log:        logger.With("handler", "admin"),
	}
}

// SuspiciousUsers handles GET /v1/admin/suspicious-users?minSwitches=2.
func (h *AdminHandler) SuspiciousUsers(w http.ResponseWriter, r *http.Request) {
	minSwitches := 0
	if v := r.URL.Query().Get("minSwitches"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "minSwitches must be a positive integer")
			return
		}
		minSwitches = n
	}

	report, err := h.antiTheft.GetUsersWithMultipleSwitches(r.Context(), minSwitches)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuspiciousUserResponses(report))
}

// AllHistory handles GET /v1/admin/switch-history?limit=100.
func (h *AdminHandler) AllHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.antiTheft.GetAllSwitchHistory(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSwitchRecordResponses(records))
}

// UserHistory handles GET /v1/admin/users/{id}/switch-history.
func (h *AdminHandler) UserHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.antiTheft.GetUserSwitchHistory(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSwitchRecordResponses(records))
}

type suspendRequest struct {
	Reason string `json:"reason"`
}

// Suspend handles POST /v1/admin/users/{id}/suspend.
func (h *AdminHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req suspendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.moderation.SuspendUser(r.Context(), moderation.SuspendInput{
		UserID: userID,
		Reason: req.Reason,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type unsuspendRequest struct {
	BatchID string `json:"batchId"`
}

// Unsuspend handles POST /v1/admin/users/{id}/unsuspend.
func (h *AdminHandler) Unsuspend(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req unsuspendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "batchId must be a UUID")
		return
	}

	user, err := h.moderation.UnsuspendUser(r.Context(), moderation.UnsuspendInput{
		UserID:  userID,
		BatchID: batchID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type createBatchRequest struct {
	Name string `json:"name"`
}

// CreateBatch handles POST /v1/admin/batches.
func (h *AdminHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req createBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batch, err := h.batches.CreateBatch(r.Context(), batchadmin.CreateBatchInput{Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBatchResponse(*batch))
}

// DeactivateBatch handles POST /v1/admin/batches/{id}/deactivate.
func (h *AdminHandler) DeactivateBatch(w http.ResponseWriter, r *http.Request) {
	batchID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	batch, err := h.batches.DeactivateBatch(r.Context(), batchID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(*batch))
}

// ListBatches handles GET /v1/admin/batches.
func (h *AdminHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.batches.ListBatches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponses(batches))
}

// pathUUID parses the named path segment as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
