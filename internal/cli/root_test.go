package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tasklist/internal/config"
	"tasklist/internal/tasks"
	"tasklist/internal/tui"
)

// isolateEnv keeps the developer's own config, .env and TASKLIST_* vars out
// of a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, k := range []string{
		config.EnvConfig, config.EnvBackend, config.EnvTheme, config.EnvTitle,
		config.EnvLogFile, config.EnvLogLevel, config.EnvAllowEmptyEdit,
	} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	return dir
}

type programCall struct {
	texts   []string
	opts    tui.Options
	allowEd bool
}

// stubProgram replaces the interactive screen with a recorder.
func stubProgram(t *testing.T) *[]programCall {
	t.Helper()
	var calls []programCall
	prev := runProgram
	runProgram = func(ctx context.Context, sess *tasks.Session, opts tui.Options) error {
		c := programCall{texts: sess.Snapshot().Texts(), opts: opts}
		// Probe the empty-edit switch through the session itself.
		if len(c.texts) > 0 {
			id := sess.Tasks()[0].ID
			if err := sess.Dispatch(ctx, tasks.BeginEdit{ID: id}); err != nil {
				return err
			}
			c.allowEd = sess.Dispatch(ctx, tasks.SaveEdit{Text: ""}) == nil
		}
		calls = append(calls, c)
		return nil
	}
	t.Cleanup(func() { runProgram = prev })
	return &calls
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRoot_SeedsTasksAndPassesOptions(t *testing.T) {
	isolateEnv(t)
	calls := stubProgram(t)

	_, _, err := execute(t, "--task", "buy milk", "--task", "walk dog", "--title", "Errands", "--backend", "sqlite")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one program run, got %d", len(*calls))
	}
	c := (*calls)[0]
	if want := []string{"buy milk", "walk dog"}; !reflect.DeepEqual(c.texts, want) {
		t.Fatalf("expected seeded %v, got %v", want, c.texts)
	}
	if c.opts.Title != "Errands" {
		t.Fatalf("expected title from flag, got %q", c.opts.Title)
	}
	if c.opts.Placeholder != config.DefaultPlaceholder || c.opts.CharLimit != config.DefaultCharLimit {
		t.Fatalf("expected default input options, got %+v", c.opts)
	}
	if c.opts.Logger == nil {
		t.Fatalf("expected a logger")
	}
	if !c.allowEd {
		t.Fatalf("expected empty edits allowed by default")
	}
}

func TestRoot_AllowEmptyEditFlag(t *testing.T) {
	isolateEnv(t)
	calls := stubProgram(t)

	if _, _, err := execute(t, "--task", "a", "--allow-empty-edit=false"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if (*calls)[0].allowEd {
		t.Fatalf("expected empty edit rejected")
	}
}

func TestRoot_FlagsOverrideEnvOverridesFile(t *testing.T) {
	dir := isolateEnv(t)
	calls := stubProgram(t)

	path := filepath.Join(dir, "tasklist.toml")
	if err := os.WriteFile(path, []byte("title = \"From file\"\ntheme = \"light\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvTheme, "dark")

	if _, _, err := execute(t, "--config", path); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := (*calls)[0].opts; got.Title != "From file" || got.Theme != "dark" {
		t.Fatalf("expected file title and env theme, got %+v", got)
	}

	if _, _, err := execute(t, "--config", path, "--theme", "light"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := (*calls)[1].opts.Theme; got != "light" {
		t.Fatalf("expected flag to win, got %q", got)
	}
}

func TestRoot_InvalidConfigStopsBeforeTUI(t *testing.T) {
	isolateEnv(t)
	calls := stubProgram(t)

	_, stderr, err := execute(t, "--backend", "postgres")
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	var ice invalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("expected invalidConfigError, got %T: %v", err, err)
	}
	if !strings.Contains(stderr, "backend") {
		t.Fatalf("expected backend named on stderr, got %q", stderr)
	}
	if len(*calls) != 0 {
		t.Fatalf("TUI must not start with invalid config")
	}
}

func TestRoot_LogFileReceivesStartupLine(t *testing.T) {
	dir := isolateEnv(t)
	stubProgram(t)

	logPath := filepath.Join(dir, "logs", "tasklist.log")
	if _, _, err := execute(t, "--log-file", logPath, "--log-level", "debug", "--task", "x"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "starting") || !strings.Contains(string(b), "seeded=1") {
		t.Fatalf("expected startup line in log, got:\n%s", b)
	}
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	isolateEnv(t)
	calls := stubProgram(t)
	if _, _, err := execute(t, "buy milk"); err == nil {
		t.Fatalf("expected error for positional arg")
	}
	if len(*calls) != 0 {
		t.Fatalf("TUI must not start")
	}
}

func TestConfigCmd_PrintsResolvedJSON(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvBackend, "sqlite")

	out, _, err := execute(t, "config", "--title", "Mine")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var env struct {
		Data config.Config `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("expected JSON, got %q: %v", out, err)
	}
	if env.Data.Backend != tasks.BackendSQLite || env.Data.Title != "Mine" {
		t.Fatalf("unexpected config: %+v", env.Data)
	}
	if !env.Data.Edit.AllowEmpty {
		t.Fatalf("expected allowEmpty default true")
	}
}

func TestConfigCmd_Example(t *testing.T) {
	isolateEnv(t)
	out, _, err := execute(t, "config", "--example")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != config.ExampleTOML {
		t.Fatalf("expected example TOML, got %q", out)
	}
}

func TestKeysCmd_Plain(t *testing.T) {
	isolateEnv(t)
	out, _, err := execute(t, "keys", "--plain")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != tui.KeysMarkdown() {
		t.Fatalf("expected raw markdown, got %q", out)
	}
}

func TestKeysCmd_Rendered(t *testing.T) {
	isolateEnv(t)
	out, _, err := execute(t, "keys")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Edit dialog") || out == tui.KeysMarkdown() {
		t.Fatalf("expected rendered markdown, got %q", out)
	}
}

func TestVersionCmd(t *testing.T) {
	prev := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = prev })

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "tasklist v1.2.3" {
		t.Fatalf("unexpected version output %q", out)
	}
}
