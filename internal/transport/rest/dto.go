package rest

import (
	"time"

	"github.com/coachdesk/coachdesk-backend/internal/domain"
)

type batchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toBatchResponse(b domain.Batch) batchResponse {
	return batchResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

func toBatchResponses(batches []domain.Batch) []batchResponse {
	out := make([]batchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return out
}

type switchRecordResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
	FromBatch  string    `json:"fromBatch"`
	ToBatch    string    `json:"toBatch"`
	ActorID    *string   `json:"actorId,omitempty"`
	SwitchedAt time.Time `json:"switchedAt"`
}

func toSwitchRecordResponses(records []domain.SwitchRecordDetail) []switchRecordResponse {
	out := make([]switchRecordResponse, 0, len(records))
	for _, rec := range records {
		item := switchRecordResponse{
			ID:         rec.ID.String(),
			UserID:     rec.UserID.String(),
			UserName:   rec.UserName,
			UserEmail:  rec.UserEmail,
			FromBatch:  rec.FromBatchName,
			ToBatch:    rec.ToBatchName,
			SwitchedAt: rec.SwitchedAt,
		}
		if rec.ActorID != nil {
			actor := rec.ActorID.String()
			item.ActorID = &actor
		}
		out = append(out, item)
	}
	return out
}

type userResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	CurrentBatchID *string `json:"currentBatchId,omitempty"`
	IsSuspended    bool    `json:"isSuspended"`
	SuspendReason  *string `json:"suspendReason,omitempty"`
	BatchLocked    bool    `json:"batchLocked"`
	MobilityState  string  `json:"mobilityState"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role.String(),
		IsSuspended:   u.IsSuspended,
		SuspendReason: u.SuspendReason,
		BatchLocked:   u.BatchLocked,
		MobilityState: u.MobilityState().String(),
	}
	if u.CurrentBatchID != nil {
		id := u.CurrentBatchID.String()
		resp.CurrentBatchID = &id
	}
	return resp
}

type suspiciousUserResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	BatchName   string `json:"batchName"`
	SwitchCount int    `json:"switchCount"`
	IsSuspended bool   `json:"isSuspended"`
}

func toSuspiciousUserResponses(report []domain.SuspiciousUser) []suspiciousUserResponse {
	out := make([]suspiciousUserResponse, 0, len(report))
	for _, row := range report {
		out = append(out, suspiciousUserResponse{
			UserID:      row.UserID.String(),
			Name:        row.Name,
			Email:       row.Email,
			Role:        row.Role.String(),
			BatchName:   row.BatchName,
			SwitchCount: row.SwitchCount,
			IsSuspended: row.IsSuspended,
		})
	}
	return out
}
