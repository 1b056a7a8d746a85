package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/metrics"
	"stabilitylog/internal/stability"
	"stabilitylog/internal/workspace"
)

var (
	workspaces *workspace.Manager
	recorder   *metrics.Recorder
)

// Configure installs the shared dependencies used by the HTTP handlers. The
// manager's session manager must wrap every handler with LoadAndSave.
func Configure(manager *workspace.Manager, rec *metrics.Recorder) {
	workspaces = manager
	recorder = rec
}

// lastRowNotice is shown when a removal would empty the schedule.
const lastRowNotice = "You must have at least one schedule row."

func available(w http.ResponseWriter, r *http.Request) bool {
	if workspaces == nil {
		applog.Debug(r.Context(), "workspace request without session manager", "path", r.URL.Path)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

// statusFor maps workspace errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, stability.ErrIncompleteRecord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, stability.ErrLastRow):
		return http.StatusConflict
	case errors.Is(err, stability.ErrRowOutOfRange), errors.Is(err, stability.ErrRecordOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, stability.ErrUnknownField), errors.Is(err, stability.ErrNoScheduleColumns):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// outcomeFor classifies err for the operation counters.
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, stability.ErrIncompleteRecord), errors.Is(err, stability.ErrLastRow):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeInvalid
	}
}

// noticeFor returns the user-facing message for err.
func noticeFor(err error) string {
	var incomplete *stability.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		return incomplete.Notice()
	case errors.Is(err, stability.ErrLastRow):
		return lastRowNotice
	default:
		return err.Error()
	}
}

// splitIndex parses "<n>" or "<n>/<rest>" into the index and remainder.
func splitIndex(path string) (int, string, bool) {
	head, rest, _ := strings.Cut(path, "/")
	index, err := strconv.Atoi(head)
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, rest, true
}
