package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
	"github.com/coachdesk/coachdesk-backend/internal/service/membership"
)

// membershipService defines the minimal interface needed by MembershipHandler.
type membershipService interface {
	SwitchBatch(ctx context.Context, input membership.SwitchInput) (*membership.SwitchResult, error)
	GetSwitchHistory(ctx context.Context) ([]domain.SwitchRecordDetail, error)
	GetSwitchCount(ctx context.Context) (int, error)
	ListActiveBatches(ctx context.Context) ([]domain.Batch, error)
}

// MembershipHandler serves the student-facing batch endpoints.
type MembershipHandler struct {
	svc membershipService
	log *slog.Logger
}

// NewMembershipHandler creates a MembershipHandler.
func NewMembershipHandler(svc membershipService, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{svc: svc, log: logger.With("handler", "membership")}
}

type switchRequest struct {
	BatchID string `json:"batchId"`
}

type switchResponse struct {
	Changed bool   `json:"changed"`
	Message string `json:"message"`
}

// SwitchBatch handles POST /v1/batches/switch.
func (h *MembershipHandler) SwitchBatch(w http.ResponseWriter, r *http.Request) {
	var req switchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "batchId must be a UUID")
		return
	}

	result, err := h.svc.SwitchBatch(r.Context(), membership.SwitchInput{BatchID: batchID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, switchResponse{
		Changed: result.Changed,
		Message: result.Message,
	})
}

// MyHistory handles GET /v1/me/switch-history.
func (h *MembershipHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetSwitchHistory(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSwitchRecordResponses(records))
}

// MyCount handles GET /v1/me/switch-count.
func (h *MembershipHandler) MyCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.GetSwitchCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// ListBatches handles GET /v1/batches.
func (h *MembershipHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.svc.ListActiveBatches(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponses(batches))
}
