package api

import (
	"net/http"
	"time"

	"github.com/gymtrack/gymtrack-web/server/internal/api/respond"
)

// HealthReporter exposes the cached service health.
type HealthReporter interface {
	IsHealthy() bool
	Down() []string
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	health HealthReporter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(h HealthReporter) *HealthHandler { return &HealthHandler{health: h} }

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status    string   `json:"status"`
	Down      []string `json:"down,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// CheckHealth handles GET /api/health.
// Always answers 200; the body reports healthy or unhealthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "unhealthy", Timestamp: time.Now().UTC().Format(time.RFC3339)}
	if h.health.IsHealthy() {
		resp.Status = "healthy"
	} else {
		resp.Down = h.health.Down()
	}
	respond.WriteJSON(w, http.StatusOK, resp)
}
