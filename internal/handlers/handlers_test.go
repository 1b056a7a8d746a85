package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"

	"stabilitylog/internal/metrics"
	"stabilitylog/internal/stability"
	"stabilitylog/internal/workspace"
)

func withTestWorkspaces(t *testing.T, opts workspace.Options) (*scs.SessionManager, *metrics.Recorder, func()) {
	t.Helper()
	originalWorkspaces, originalRecorder := workspaces, recorder
	sm := scs.New()
	rec := metrics.New()
	Configure(workspace.NewManager(sm, opts), rec)
	return sm, rec, func() {
		workspaces, recorder = originalWorkspaces, originalRecorder
	}
}

// sessionContext returns a context carrying a fresh session; requests that
// share it share one workspace.
func sessionContext(t *testing.T, sm *scs.SessionManager) context.Context {
	t.Helper()
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return ctx
}

func serve(ctx context.Context, handler http.HandlerFunc, method, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body).WithContext(ctx)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func serveJSON(ctx context.Context, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return serve(ctx, handler, method, target, "application/json", reader)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTMX(req) {
		t.Fatal("expected false when no HTMX headers present")
	}
	req.Header.Set("HX-Request", "true")
	if !isHTMX(req) {
		t.Fatal("expected true when HX-Request header present")
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"incomplete", &stability.IncompleteError{Missing: []stability.HeaderField{stability.FieldPlanNo}}, http.StatusUnprocessableEntity},
		{"last row", stability.ErrLastRow, http.StatusConflict},
		{"row range", stability.ErrRowOutOfRange, http.StatusNotFound},
		{"record range", stability.ErrRecordOutOfRange, http.StatusNotFound},
		{"unknown field", stability.ErrUnknownField, http.StatusBadRequest},
		{"csv", stability.ErrNoScheduleColumns, http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := statusFor(tt.err); got != tt.want {
				t.Fatalf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNoticeFor(t *testing.T) {
	t.Parallel()

	if got := noticeFor(stability.ErrLastRow); got != "You must have at least one schedule row." {
		t.Fatalf("unexpected last row notice %q", got)
	}
	incomplete := &stability.IncompleteError{Missing: []stability.HeaderField{stability.FieldProduct}}
	if got := noticeFor(incomplete); !strings.HasPrefix(got, "Please fill in Plan No, Product and Batch No") {
		t.Fatalf("unexpected incomplete notice %q", got)
	}
}

func TestSplitIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path  string
		index int
		rest  string
		ok    bool
	}{
		{"0", 0, "", true},
		{"12/edit", 12, "edit", true},
		{"3.chamber", 0, "", false},
		{"-1", 0, "", false},
		{"abc", 0, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			index, rest, ok := splitIndex(tt.path)
			if index != tt.index || rest != tt.rest || ok != tt.ok {
				t.Fatalf("splitIndex(%q) = (%d, %q, %t)", tt.path, index, rest, ok)
			}
		})
	}
}

func workspaceDefaults() workspace.Options {
	return workspace.DefaultOptions()
}
