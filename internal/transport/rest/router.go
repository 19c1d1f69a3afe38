package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/transport/middleware"
)

// tokenValidator matches the access-token validator the auth middleware
// expects.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Health     *HealthHandler
	Membership *MembershipHandler
	Admin      *AdminHandler
	Validator  tokenValidator
	Logger     *slog.Logger
	Server     config.ServerConfig
	CORS       config.CORSConfig
}

// NewRouter builds the HTTP handler tree with the standard middleware
// chain applied to every route. The batch-switch endpoint additionally
// carries a per-IP rate limit.
//
// The returned stop function releases the rate limiter's background
// goroutine; call it on shutdown.
func NewRouter(deps RouterDeps) (http.Handler, func()) {
	mux := http.NewServeMux()

	// Probes stay outside auth so orchestrators can reach them.
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	limiter := middleware.NewRateLimiter(time.Minute)
	switchLimit := limiter.Limit(deps.Server.SwitchRateLimit)

	mux.Handle("POST /v1/batches/switch", switchLimit(http.HandlerFunc(deps.Membership.SwitchBatch)))
	mux.HandleFunc("GET /v1/batches", deps.Membership.ListBatches)
	mux.HandleFunc("GET /v1/me/switch-history", deps.Membership.MyHistory)
	mux.HandleFunc("GET /v1/me/switch-count", deps.Membership.MyCount)

	mux.HandleFunc("GET /v1/admin/suspicious-users", deps.Admin.SuspiciousUsers)
	mux.HandleFunc("GET /v1/admin/switch-history", deps.Admin.AllHistory)
	mux.HandleFunc("GET /v1/admin/users/{id}/switch-history", deps.Admin.UserHistory)
	mux.HandleFunc("POST /v1/admin/users/{id}/suspend", deps.Admin.Suspend)
	mux.HandleFunc("POST /v1/admin/users/{id}/unsuspend", deps.Admin.Unsuspend)
	mux.HandleFunc("GET /v1/admin/batches", deps.Admin.ListBatches)
	mux.HandleFunc("POST /v1/admin/batches", deps.Admin.CreateBatch)
	mux.HandleFunc("POST /v1/admin/batches/{id}/deactivate", deps.Admin.DeactivateBatch)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	)

	return chain(mux), limiter.Stop
}
