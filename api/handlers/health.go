// ABOUTME: Health handler reporting cache size and connectivity state
// ABOUTME: Never probes the network; it only reads memoized state

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"webfetch-api/api/dto/responses"
	"webfetch-api/core/domain"
	"webfetch-api/core/interfaces"
	"webfetch-api/pkg/utils/duration"
)

// ConnectivityReporter exposes the last probe result without probing
type ConnectivityReporter interface {
	State() (domain.ConnectivityState, bool)
}

// HealthHandler handles GET /healthz
type HealthHandler struct {
	store   interfaces.ContentStore
	prober  ConnectivityReporter
	logger  interfaces.Logger
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store interfaces.ContentStore, prober ConnectivityReporter, logger interfaces.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		prober:  prober,
		logger:  logger,
		started: time.Now(),
		now:     time.Now,
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for GET /healthz
type HealthOutput struct {
	Body responses.Health
}

// Health reports cache size and the memoized connectivity state
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	now := h.now()
	out := &HealthOutput{Body: responses.Health{
		Status:       "ok",
		Connectivity: "unknown",
		Uptime:       duration.Humanize(now.Sub(h.started)),
	}}

	entries, err := h.store.Len(ctx)
	if err != nil {
		h.logger.Warn("Health check could not read cache size", map[string]interface{}{
			"error": err.Error(),
		})
		out.Body.Status = "degraded"
	}
	out.Body.CacheEntries = entries

	if state, ok := h.prober.State(); ok {
		out.Body.Connectivity = "offline"
		if state.IsConnected {
			out.Body.Connectivity = "connected"
		}
		out.Body.LastProbe = duration.Humanize(now.Sub(state.CheckedAt)) + " ago"
	}

	return out, nil
}
