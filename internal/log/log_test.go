package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "user=test") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestWarnRespectsLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
		_ = SetLevel("info")
	})

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel(error) error = %v", err)
	}
	Warn(context.Background(), "suppressed")
	if buf.Len() != 0 {
		t.Fatalf("expected warn to be filtered at error level, got %q", buf.String())
	}

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn) error = %v", err)
	}
	Warn(context.Background(), "row removal blocked", "rows", 1)
	if !strings.Contains(buf.String(), "level=warn") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestJSONHandlerRenamesKeys(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newJSONHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "record finalized", "planNo", "P1")

	line := buf.String()
	for _, token := range []string{`"ts":`, `"level":"info"`, `"msg":"record finalized"`, `"planNo":"P1"`} {
		if !strings.Contains(line, token) {
			t.Fatalf("expected %s in %q", token, line)
		}
	}
}

func TestSetFormatRejectsUnknown(t *testing.T) {
	original := Logger()
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	if err := SetFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := SetFormat("json"); err != nil {
		t.Fatalf("SetFormat(json) error = %v", err)
	}
	if _, ok := Logger().Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", Logger().Handler())
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
