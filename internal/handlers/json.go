package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/stability"
)

const maxBodyBytes = 1 << 20

type noticeResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeWorkspaceError reports err with its mapped status. Incomplete records
// also list the missing field names.
func writeWorkspaceError(w http.ResponseWriter, err error) {
	resp := noticeResponse{Error: noticeFor(err)}
	var incomplete *stability.IncompleteError
	if errors.As(err, &incomplete) {
		for _, field := range incomplete.Missing {
			resp.Missing = append(resp.Missing, string(field))
		}
	}
	writeJSON(w, statusFor(err), resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		applog.Debug(r.Context(), "invalid json payload", "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}
