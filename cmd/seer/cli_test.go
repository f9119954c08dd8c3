package main

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/seer/internal/config"
	"github.com/hpungsan/seer/internal/db"
)

func testApp(t *testing.T) (*cli.App, *sql.DB, string) {
	t.Helper()
	t.Setenv("SEER_OUT_DIR", "")
	baseDir := t.TempDir()
	conn, err := db.Init(baseDir)
	if err != nil {
		t.Fatalf("db.Init() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return newCLIApp(conn, config.DefaultConfig(), baseDir), conn, baseDir
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()
	fn()
	w.Close()
	data, _ := io.ReadAll(r)
	return string(data)
}

func TestGenerate_WritesFile(t *testing.T) {
	app, _, baseDir := testApp(t)

	out := captureStdout(t, func() {
		err := app.Run([]string{"seer", "generate",
			"--text", "header: Sign in; input: Email; button: Continue",
			"--name", "Login",
		})
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})

	if !strings.Contains(out, "wrote ") {
		t.Fatalf("output = %q, want summary line", out)
	}

	matches, err := filepath.Glob(filepath.Join(baseDir, "nl-login-*.excalidraw"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("document glob = %v, err = %v", matches, err)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "latest-login.excalidraw")); err != nil {
		t.Errorf("latest copy missing: %v", err)
	}
}

func TestGenerate_JSONOutput(t *testing.T) {
	app, _, _ := testApp(t)

	out := captureStdout(t, func() {
		err := app.Run([]string{"seer", "generate",
			"--text", "button: Go", "--json",
		})
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})

	var parsed struct {
		RunID string `json:"run_id"`
		Seed  int64  `json:"seed"`
		Meta  struct {
			Preset string `json:"preset"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if parsed.RunID == "" || parsed.Meta.Preset != "mobile" {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestGenerate_StdoutDocument(t *testing.T) {
	app, _, _ := testApp(t)

	out := captureStdout(t, func() {
		err := app.Run([]string{"seer", "generate",
			"--text", "button: Go", "--out", "-",
		})
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("stdout is not a JSON document: %v", err)
	}
	if doc["type"] != "excalidraw" {
		t.Errorf("document type = %v", doc["type"])
	}
}

func TestGenerate_MissingText(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run([]string{"seer", "generate"})
	if err == nil {
		t.Fatal("expected error for missing text")
	}
	var ec cli.ExitCoder
	if !stderrors.As(err, &ec) {
		t.Fatalf("error = %T, want ExitCoder", err)
	}
	if ec.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2 (usage error)", ec.ExitCode())
	}
}

func TestGenerate_UnknownPreset(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run([]string{"seer", "generate", "--text", "button: Go", "--preset", "watch"})
	var ec cli.ExitCoder
	if !stderrors.As(err, &ec) || ec.ExitCode() != 2 {
		t.Fatalf("error = %v, want usage error", err)
	}
}

func TestGenerate_SpecFile(t *testing.T) {
	app, _, _ := testApp(t)

	specPath := filepath.Join(t.TempDir(), "spec.txt")
	if err := os.WriteFile(specPath, []byte("header: Hi\nbutton: Go\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out := captureStdout(t, func() {
		err := app.Run([]string{"seer", "generate", "--spec", specPath, "--json"})
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
	if !strings.Contains(out, `"run_id"`) {
		t.Errorf("output = %q", out)
	}
}

func TestRuns_ListsGenerated(t *testing.T) {
	app, _, _ := testApp(t)

	captureStdout(t, func() {
		if err := app.Run([]string{"seer", "generate", "--text", "button: Go", "--name", "Demo"}); err != nil {
			t.Errorf("generate error = %v", err)
		}
	})

	out := captureStdout(t, func() {
		if err := app.Run([]string{"seer", "runs"}); err != nil {
			t.Errorf("runs error = %v", err)
		}
	})

	var parsed struct {
		Runs []struct {
			Slug string `json:"slug"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("runs output is not JSON: %v", err)
	}
	if len(parsed.Runs) != 1 || parsed.Runs[0].Slug != "demo" {
		t.Errorf("runs = %+v", parsed.Runs)
	}
}

func TestGenerate_TextAndSpecConflict(t *testing.T) {
	app, _, _ := testApp(t)

	specPath := filepath.Join(t.TempDir(), "spec.txt")
	if err := os.WriteFile(specPath, []byte("button: Go"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := app.Run([]string{"seer", "generate", "--text", "button: Go", "--spec", specPath})
	var ec cli.ExitCoder
	if !stderrors.As(err, &ec) || ec.ExitCode() != 2 {
		t.Fatalf("error = %v, want usage error", err)
	}
}

func TestRuns_Latest(t *testing.T) {
	app, _, _ := testApp(t)

	captureStdout(t, func() {
		if err := app.Run([]string{"seer", "generate", "--text", "button: Go", "--name", "First"}); err != nil {
			t.Errorf("generate error = %v", err)
		}
	})
	captureStdout(t, func() {
		if err := app.Run([]string{"seer", "generate", "--text", "button: Go", "--name", "Second"}); err != nil {
			t.Errorf("generate error = %v", err)
		}
	})

	out := captureStdout(t, func() {
		if err := app.Run([]string{"seer", "runs", "--latest"}); err != nil {
			t.Errorf("runs --latest error = %v", err)
		}
	})

	var parsed struct {
		Run struct {
			Slug string `json:"slug"`
		} `json:"run"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if parsed.Run.Slug != "second" {
		t.Errorf("latest slug = %q, want second", parsed.Run.Slug)
	}
}

func TestLatest_NotFound(t *testing.T) {
	app, _, _ := testApp(t)

	err := app.Run([]string{"seer", "latest"})
	var ec cli.ExitCoder
	if !stderrors.As(err, &ec) || ec.ExitCode() != 1 {
		t.Fatalf("error = %v, want exit 1", err)
	}
}

func TestResolveOutDir(t *testing.T) {
	cfg := &config.Config{OutDir: "/cfg/out"}

	t.Setenv("SEER_OUT_DIR", "/env/out")
	if got := resolveOutDir(cfg, "/base"); got != "/env/out" {
		t.Errorf("resolveOutDir = %q, want env override", got)
	}

	t.Setenv("SEER_OUT_DIR", "")
	if got := resolveOutDir(cfg, "/base"); got != "/cfg/out" {
		t.Errorf("resolveOutDir = %q, want config value", got)
	}
	if got := resolveOutDir(&config.Config{}, "/base"); got != "/base" {
		t.Errorf("resolveOutDir = %q, want base dir", got)
	}
}

func TestIsCLIMode(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"seer", "generate"}
	if !isCLIMode() {
		t.Error("generate should select CLI mode")
	}
	os.Args = []string{"seer"}
	if isCLIMode() {
		t.Error("no args should select MCP mode")
	}
	os.Args = []string{"seer", "--version"}
	if !isCLIMode() {
		t.Error("--version should select CLI mode")
	}
}
