package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "prodsight.log")

	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogDebug("debug %d", 7)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 json lines, got %d: %s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", lines[0], err)
	}
	if entry["msg"] != "hello world" {
		t.Fatalf("expected LogEvent content, got: %v", entry["msg"])
	}
	if !strings.Contains(lines[1], "debug 7") {
		t.Fatalf("expected debug line with debug enabled, got: %s", lines[1])
	}
}

func TestInitWithoutDebugDropsDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "prodsight.log")
	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogDebug("hidden")
	LogEvent("shown")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug line should be filtered: %s", data)
	}
	if !strings.Contains(string(data), "shown") {
		t.Fatalf("expected info line: %s", data)
	}
}

func TestNewWithWritersFansOut(t *testing.T) {
	var console, file bytes.Buffer
	l := NewWithWriters(&console, &file, slog.LevelInfo)
	l.Info("fanout", "k", "v")

	if !strings.Contains(console.String(), "msg=fanout") {
		t.Fatalf("expected text output, got: %s", console.String())
	}
	if !strings.Contains(file.String(), `"msg":"fanout"`) {
		t.Fatalf("expected json output, got: %s", file.String())
	}
}

func TestLogRequestAttributes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "requests.log")
	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogRequest("req-1", "get", "/api/health", 200, 3*time.Millisecond)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	for _, want := range []string{`"request_id":"req-1"`, `"status":200`, "[HTTP] GET /api/health 200"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %s in log, got: %s", want, content)
		}
	}
}

func TestBuildRequestMessageDefaults(t *testing.T) {
	msg := buildRequestMessage(" ", "", 404)
	if msg != "[HTTP] GET / 404" {
		t.Fatalf("unexpected message: %s", msg)
	}
}
