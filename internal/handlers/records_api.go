package handlers

import (
	"net/http"
	"strconv"
	"strings"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/workspace"
)

type chambersResponse struct {
	Chambers []string `json:"chambers"`
}

// RecordResource handles JSON interactions with the session's record store.
func RecordResource(w http.ResponseWriter, r *http.Request) {
	if !available(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/records")
	path = strings.Trim(path, "/")

	if path == "" {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, workspaces.Load(r.Context()).Store.List())
		return
	}

	index, rest, ok := splitIndex(path)
	if !ok {
		applog.Debug(r.Context(), "invalid record identifier", "identifier", path)
		http.NotFound(w, r)
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		showRecord(w, r, index)
	case rest == "" && r.Method == http.MethodDelete:
		deleteRecord(w, r, index)
	case rest == "edit" && r.Method == http.MethodPost:
		editRecord(w, r, index)
	case rest == "" || rest == "edit":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func showRecord(w http.ResponseWriter, r *http.Request, index int) {
	record, err := workspaces.Load(r.Context()).Store.At(index)
	if err != nil {
		writeWorkspaceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func deleteRecord(w http.ResponseWriter, r *http.Request, index int) {
	ws, err := workspaces.Update(r.Context(), func(ws *workspace.Workspace) error {
		return ws.Store.RemoveAt(index)
	})
	recorder.Operation("remove_record", outcomeFor(err))
	if err != nil {
		writeWorkspaceError(w, err)
		return
	}
	applog.Info(r.Context(), "batch record removed", "index", index)
	writeJSON(w, http.StatusOK, ws.Store.List())
}

func editRecord(w http.ResponseWriter, r *http.Request, index int) {
	mutateDraft(w, r, "load_for_editing", func(ws *workspace.Workspace) error {
		return ws.Edit(index)
	})
}

// Chambers lists the distinct chambers used by the session's records.
func Chambers(w http.ResponseWriter, r *http.Request) {
	if !available(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	includeDraft, _ := strconv.ParseBool(r.URL.Query().Get("include_draft"))
	chambers := workspaces.Load(r.Context()).Chambers(includeDraft)
	writeJSON(w, http.StatusOK, chambersResponse{Chambers: chambers})
}
