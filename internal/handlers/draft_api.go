package handlers

import (
	"net/http"
	"strings"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/stability"
	"stabilitylog/internal/workspace"
)

type draftResponse struct {
	Draft              stability.BatchRecord `json:"draft"`
	ScheduleDialogOpen bool                  `json:"scheduleDialogOpen"`
	RowCount           int                   `json:"rowCount"`
	MinRows            int                   `json:"minRows"`
	Missing            []string              `json:"missing"`
}

type fieldRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type rowFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type dialogRequest struct {
	Open bool `json:"open"`
}

type importResponse struct {
	Imported int           `json:"imported"`
	Draft    draftResponse `json:"draft"`
}

func projectDraft(ws *workspace.Workspace) draftResponse {
	draft := ws.Editor.Draft()
	missing := make([]string, 0)
	for _, field := range draft.Missing() {
		missing = append(missing, string(field))
	}
	return draftResponse{
		Draft:              draft,
		ScheduleDialogOpen: ws.Editor.ScheduleDialogOpen(),
		RowCount:           len(draft.Schedule),
		MinRows:            ws.Editor.Policy().MinRows,
		Missing:            missing,
	}
}

// DraftResource handles JSON interactions with the session's draft record.
func DraftResource(w http.ResponseWriter, r *http.Request) {
	if !available(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/draft")
	path = strings.Trim(path, "/")

	switch {
	case path == "":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, projectDraft(workspaces.Load(r.Context())))
	case path == "fields":
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		setDraftField(w, r)
	case path == "rows":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		mutateDraft(w, r, "add_row", func(ws *workspace.Workspace) error {
			ws.Editor.AddRow()
			return nil
		})
	case strings.HasPrefix(path, "rows/"):
		index, rest, ok := splitIndex(strings.TrimPrefix(path, "rows/"))
		if !ok || rest != "" {
			applog.Debug(r.Context(), "invalid schedule row identifier", "path", path)
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodPut:
			updateDraftRow(w, r, index)
		case http.MethodDelete:
			mutateDraft(w, r, "remove_row", func(ws *workspace.Workspace) error {
				return ws.Editor.RemoveRow(index)
			})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case path == "clear":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		mutateDraft(w, r, "clear", func(ws *workspace.Workspace) error {
			ws.Editor.Clear()
			return nil
		})
	case path == "finalize":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		finalizeDraft(w, r)
	case path == "dialog":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		toggleDialog(w, r)
	case path == "import":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		importDraftRows(w, r)
	default:
		http.NotFound(w, r)
	}
}

// mutateDraft applies fn to the session workspace and answers with the
// resulting draft, or with the mapped error.
func mutateDraft(w http.ResponseWriter, r *http.Request, operation string, fn func(*workspace.Workspace) error) {
	ws, err := workspaces.Update(r.Context(), fn)
	recorder.Operation(operation, outcomeFor(err))
	if err != nil {
		applog.Debug(r.Context(), "draft operation refused", "operation", operation, "error", err)
		writeWorkspaceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectDraft(ws))
}

func setDraftField(w http.ResponseWriter, r *http.Request) {
	var payload fieldRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	mutateDraft(w, r, "set_field", func(ws *workspace.Workspace) error {
		return ws.Editor.SetField(payload.Name, payload.Value)
	})
}

func updateDraftRow(w http.ResponseWriter, r *http.Request, index int) {
	var payload rowFieldRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	mutateDraft(w, r, "update_row", func(ws *workspace.Workspace) error {
		return ws.Editor.UpdateRow(index, payload.Field, payload.Value)
	})
}

func toggleDialog(w http.ResponseWriter, r *http.Request) {
	var payload dialogRequest
	if !decodeJSON(w, r, &payload) {
		return
	}
	operation := "close_dialog"
	if payload.Open {
		operation = "open_dialog"
	}
	mutateDraft(w, r, operation, func(ws *workspace.Workspace) error {
		if payload.Open {
			return ws.Editor.OpenScheduleDialog()
		}
		ws.Editor.CloseScheduleDialog()
		return nil
	})
}

func finalizeDraft(w http.ResponseWriter, r *http.Request) {
	var record stability.BatchRecord
	ws, err := workspaces.Update(r.Context(), func(ws *workspace.Workspace) error {
		var err error
		record, err = ws.Finalize()
		return err
	})
	recorder.Operation("finalize", outcomeFor(err))
	if err != nil {
		applog.Debug(r.Context(), "finalize refused", "error", err)
		writeWorkspaceError(w, err)
		return
	}
	recorder.Finalized(ws.Store.Len())
	applog.Info(r.Context(), "batch record finalized", "batchNo", record.BatchNo, "rows", len(record.Schedule))
	writeJSON(w, http.StatusCreated, record)
}

func importDraftRows(w http.ResponseWriter, r *http.Request) {
	rows, err := stability.ParseScheduleCSV(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		recorder.Operation("import", outcomeFor(err))
		applog.Debug(r.Context(), "schedule import rejected", "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	ws, _ := workspaces.Update(r.Context(), func(ws *workspace.Workspace) error {
		ws.Editor.AppendRows(rows)
		return nil
	})
	recorder.Operation("import", outcomeFor(nil))
	recorder.RowsImported(len(rows))
	writeJSON(w, http.StatusOK, importResponse{Imported: len(rows), Draft: projectDraft(ws)})
}
