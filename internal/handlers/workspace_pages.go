package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	templpkg "github.com/a-h/templ"

	applog "stabilitylog/internal/log"
	"stabilitylog/internal/stability"
	"stabilitylog/internal/views/pages"
	"stabilitylog/internal/views/tabs"
	"stabilitylog/internal/workspace"
)

const maxImportBytes = 4 << 20

// Workspace renders the application shell for the tab named in ?tab=.
func Workspace(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !available(w, r) {
		return
	}

	ctx := r.Context()
	key := r.URL.Query().Get("tab")
	if key != "" && !tabs.Valid(key) {
		applog.Debug(ctx, "unknown tab requested, showing default", "tab", key, "default", tabs.DefaultKey)
	}
	ws := workspaces.Load(ctx)
	draft := ws.Editor.Draft()
	view := pages.WorkspaceView{
		Tab:        tabs.Resolve(key),
		Draft:      draft,
		Records:    ws.Store.List(),
		Chambers:   ws.Chambers(false),
		DialogOpen: ws.Editor.ScheduleDialogOpen(),
		MinRows:    ws.Editor.Policy().MinRows,
		Notice:     workspaces.PopNotice(ctx),
	}
	// Persist a newly created workspace so the session cookie is issued.
	workspaces.Save(ctx, ws)

	var component templpkg.Component
	if isHTMX(r) && r.Header.Get("HX-Boosted") != "true" {
		component = pages.WorkspacePartial(view)
	} else {
		component = pages.Workspace(view)
	}
	render(w, r, component)
}

// DraftForm applies a submitted draft form and then the requested action.
func DraftForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !available(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse draft form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	action := strings.TrimSpace(r.PostForm.Get("action"))
	var notice string
	_, err := workspaces.Update(ctx, func(ws *workspace.Workspace) error {
		if action == "clear" {
			ws.Editor.Clear()
			return nil
		}
		applyDraftForm(r, ws.Editor)

		switch {
		case action == "" || action == "save":
			return nil
		case action == "add-row":
			ws.Editor.AddRow()
			return nil
		case strings.HasPrefix(action, "remove-row:"):
			index, err := strconv.Atoi(strings.TrimPrefix(action, "remove-row:"))
			if err != nil {
				return fmt.Errorf("%w: %q", stability.ErrRowOutOfRange, action)
			}
			return ws.Editor.RemoveRow(index)
		case action == "finalize":
			record, err := ws.Finalize()
			if err != nil {
				return err
			}
			recorder.Finalized(ws.Store.Len())
			notice = fmt.Sprintf("Saved batch record %s.", record.BatchNo)
			return nil
		case action == "open-dialog":
			return ws.Editor.OpenScheduleDialog()
		case action == "close-dialog":
			ws.Editor.CloseScheduleDialog()
			return nil
		default:
			return errUnknownAction
		}
	})

	recorder.Operation(formOperation(action), outcomeFor(err))
	if errors.Is(err, errUnknownAction) {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	if err != nil {
		applog.Debug(ctx, "draft form action refused", "action", action, "error", err)
		notice = noticeFor(err)
	}
	if notice != "" {
		workspaces.SetNotice(ctx, notice)
	}
	redirectToTab(w, r, tabs.Home)
}

var errUnknownAction = errors.New("unknown form action")

func formOperation(action string) string {
	if strings.HasPrefix(action, "remove-row:") {
		return "remove_row"
	}
	if action == "" {
		action = "save"
	}
	return "form_" + strings.ReplaceAll(action, "-", "_")
}

// applyDraftForm copies header.* and row.<i>.* form values into the editor.
// Keys for unknown fields or rows no longer in the draft are skipped.
func applyDraftForm(r *http.Request, editor *stability.Editor) {
	for key, values := range r.PostForm {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch {
		case strings.HasPrefix(key, "header."):
			if err := editor.SetField(strings.TrimPrefix(key, "header."), value); err != nil {
				applog.Debug(r.Context(), "skipping draft form field", "key", key, "error", err)
			}
		case strings.HasPrefix(key, "row."):
			index, field, ok := parseRowKey(key)
			if !ok {
				applog.Debug(r.Context(), "skipping malformed row key", "key", key)
				continue
			}
			if err := editor.UpdateRow(index, field, value); err != nil {
				applog.Debug(r.Context(), "skipping draft form row value", "key", key, "error", err)
			}
		}
	}
}

// parseRowKey splits "row.<index>.<field>".
func parseRowKey(key string) (int, string, bool) {
	head, field, found := strings.Cut(strings.TrimPrefix(key, "row."), ".")
	if !found || field == "" {
		return 0, "", false
	}
	index, err := strconv.Atoi(head)
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, field, true
}

// DraftImport appends schedule rows from an uploaded or pasted CSV.
func DraftImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !available(w, r) {
		return
	}

	ctx := r.Context()
	source, closeSource, err := importSource(w, r)
	if err != nil {
		applog.Debug(ctx, "schedule import without csv", "error", err)
		workspaces.SetNotice(ctx, "Choose a CSV file or paste CSV text to import.")
		redirectToTab(w, r, tabs.Excel)
		return
	}
	defer closeSource()

	rows, err := stability.ParseScheduleCSV(source)
	if err != nil {
		recorder.Operation("import", outcomeFor(err))
		applog.Debug(ctx, "schedule import rejected", "error", err)
		workspaces.SetNotice(ctx, fmt.Sprintf("Import failed: %v.", err))
		redirectToTab(w, r, tabs.Excel)
		return
	}

	if _, err := workspaces.Update(ctx, func(ws *workspace.Workspace) error {
		ws.Editor.AppendRows(rows)
		return nil
	}); err != nil {
		applog.Error(ctx, "failed to store imported rows", "error", err)
	}
	recorder.Operation("import", outcomeFor(nil))
	recorder.RowsImported(len(rows))
	applog.Info(ctx, "schedule rows imported", "rows", len(rows))
	workspaces.SetNotice(ctx, fmt.Sprintf("Imported %d schedule row(s).", len(rows)))
	redirectToTab(w, r, tabs.Excel)
}

func importSource(w http.ResponseWriter, r *http.Request) (io.Reader, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, nil, err
		}
		if file, _, err := r.FormFile("file"); err == nil {
			return file, func() { file.Close() }, nil
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, nil, err
	}

	text := r.PostFormValue("csv")
	if strings.TrimSpace(text) == "" {
		return nil, nil, errors.New("no csv provided")
	}
	return strings.NewReader(text), func() {}, nil
}

// RecordPage serves the detail view and the edit/delete form posts for one
// stored record.
func RecordPage(w http.ResponseWriter, r *http.Request) {
	if !available(w, r) {
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/records"), "/")
	index, rest, ok := splitIndex(path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	switch {
	case rest == "" && r.Method == http.MethodGet:
		record, err := workspaces.Load(ctx).Store.At(index)
		if err != nil {
			applog.Debug(ctx, "record detail not found", "index", index, "error", err)
			http.NotFound(w, r)
			return
		}
		render(w, r, pages.RecordDetail(index, record))
	case rest == "edit" && r.Method == http.MethodPost:
		_, err := workspaces.Update(ctx, func(ws *workspace.Workspace) error {
			return ws.Edit(index)
		})
		recorder.Operation("load_for_editing", outcomeFor(err))
		if err != nil {
			workspaces.SetNotice(ctx, "That batch record no longer exists.")
		}
		redirectToTab(w, r, tabs.Home)
	case rest == "delete" && r.Method == http.MethodPost:
		_, err := workspaces.Update(ctx, func(ws *workspace.Workspace) error {
			return ws.Store.RemoveAt(index)
		})
		recorder.Operation("remove_record", outcomeFor(err))
		if err != nil {
			workspaces.SetNotice(ctx, "That batch record no longer exists.")
		}
		redirectToTab(w, r, tabs.Home)
	case rest == "" || rest == "edit" || rest == "delete":
		w.WriteHeader(http.StatusMethodNotAllowed)
	default:
		http.NotFound(w, r)
	}
}

func render(w http.ResponseWriter, r *http.Request, component templpkg.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func redirectToTab(w http.ResponseWriter, r *http.Request, tab string) {
	target := "/?tab=" + url.QueryEscape(tab)
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
