package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	applog "stabilitylog/internal/log"
)

type healthResponse struct {
	Status     string    `json:"status"`
	Workspaces bool      `json:"workspaces"`
	Time       time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
// It reports 503 until the workspace manager is configured.
func Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:     "ok",
		Workspaces: workspaces != nil,
		Time:       time.Now().UTC(),
	}
	status := http.StatusOK
	if !resp.Workspaces {
		resp.Status = "starting"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		return
	}
	applog.Debug(r.Context(), "health check responded", "status", resp.Status)
}
