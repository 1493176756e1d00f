// internal/cli/cli_test.go
package prodsight

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/export"
)

func testConfig(t *testing.T) appconfig.Config {
	t.Helper()
	dir := t.TempDir()
	return appconfig.Config{
		HTMLOutput: filepath.Join(dir, "out", "dashboard.html"),
		ChartsDir:  filepath.Join(dir, "charts"),
	}
}

// TestCollectCommandData ensures every user-facing command is registered
// under the root command and that nesting is reflected in the indentation.
func TestCollectCommandData(t *testing.T) {
	data := collectCommandData(rootCmd, "", "")
	paths := make(map[string]bool)
	for _, d := range data {
		paths[strings.TrimSpace(d.path)] = true
	}
	for _, want := range []string{
		"prodsight build",
		"prodsight serve",
		"prodsight browse",
		"prodsight export tables",
		"prodsight export views",
		"prodsight export charts",
		"prodsight show config",
		"prodsight show tables",
		"prodsight list commands",
	} {
		if !paths[want] {
			t.Errorf("expected command %q to be registered", want)
		}
	}
}

func TestRunListCommands(t *testing.T) {
	var buf bytes.Buffer
	runListCommands(&buf, rootCmd)
	if !strings.Contains(buf.String(), "Commands and Subcommands:") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if strings.Contains(buf.String(), "completion") {
		t.Fatalf("completion command should be hidden: %s", buf.String())
	}
}

func TestRunBuildWritesHTML(t *testing.T) {
	cfg := testConfig(t)
	var buf bytes.Buffer
	path, err := runBuild(&buf, cfg)
	if err != nil {
		t.Fatalf("runBuild error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dashboard: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Fatal("expected an html document")
	}
	if !strings.Contains(buf.String(), path) {
		t.Fatalf("expected status line naming %s, got %s", path, buf.String())
	}
}

func TestRunExportTablesToStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := runExportTables(&buf, testConfig(t), "json", ""); err != nil {
		t.Fatalf("runExportTables error: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded) < len(export.TableNames) {
		t.Fatalf("expected at least %d keys, got %d", len(export.TableNames), len(decoded))
	}
}

func TestRunExportViewsToFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExportFormat = "yaml"
	out := filepath.Join(t.TempDir(), "views.yaml")
	var buf bytes.Buffer
	if err := runExportViews(&buf, cfg, "", out); err != nil {
		t.Fatalf("runExportViews error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "id: "+dashboard.ViewOverview) {
		t.Fatalf("expected yaml views, got: %.200s", data)
	}
}

func TestRunExportRejectsUnknownFormat(t *testing.T) {
	if err := runExportTables(&bytes.Buffer{}, testConfig(t), "xml", ""); err == nil {
		t.Fatal("expected an error for xml")
	}
}

func TestRunExportCharts(t *testing.T) {
	cfg := testConfig(t)
	paths, err := runExportCharts(&bytes.Buffer{}, cfg)
	if err != nil {
		t.Fatalf("runExportCharts error: %v", err)
	}
	if len(paths) != 7 {
		t.Fatalf("expected 7 chart files, got %d", len(paths))
	}
	for _, p := range paths {
		if filepath.Ext(p) != ".svg" {
			t.Fatalf("expected svg output, got %s", p)
		}
	}
}

func TestRunShowTables(t *testing.T) {
	var buf bytes.Buffer
	if err := runShowTables(&buf, testConfig(t), false); err != nil {
		t.Fatalf("runShowTables error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Seed: 42", "Random Forest", "Stable High", "31.7%", "Alert tiers (471 products)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestRunShowConfig(t *testing.T) {
	var buf bytes.Buffer
	runShowConfig(&buf, false)
	if !strings.Contains(buf.String(), "Current configuration:") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
