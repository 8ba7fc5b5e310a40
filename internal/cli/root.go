package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/format"
	"tasklist/internal/logging"
	"tasklist/internal/tasks"
	"tasklist/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath     string
	Backend        string
	Theme          string
	Title          string
	LogFile        string
	LogLevel       string
	AllowEmptyEdit bool
	Tasks          []string
}

// runProgram shows the interactive screen. Tests replace it.
var runProgram = tui.Run

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tasklist",
		Short:        "A single-screen to-do list for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start with an empty list
  tasklist

  # Start with a couple of tasks, backed by in-memory sqlite
  tasklist --backend sqlite --task "buy milk" --task "walk dog"

  # Show the key bindings
  tasklist keys
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigPath, "config", "", "Path to a TOML config file (default: $"+config.EnvConfig+" or the user config dir)")
	f.StringVar(&app.Backend, "backend", tasks.BackendMemory, "Task store backend (memory|sqlite); nothing is written to disk either way")
	f.StringVar(&app.Theme, "theme", config.ThemeAuto, "Color theme (auto|light|dark)")
	f.StringVar(&app.Title, "title", config.DefaultTitle, "Heading shown above the list")
	f.StringVar(&app.LogFile, "log-file", "", "Write logs to this file (default: no logs)")
	f.StringVar(&app.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	f.BoolVar(&app.AllowEmptyEdit, "allow-empty-edit", true, "Allow saving an edit that blanks out a task")
	cmd.Flags().StringArrayVar(&app.Tasks, "task", nil, "Seed the list with a task (repeatable)")

	cmd.AddCommand(newKeysCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

// resolveConfig loads file and environment settings, then applies the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command, app *App) (config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return cfg, err
	}

	changed := func(name string) bool {
		fl := cmd.Flag(name)
		return fl != nil && fl.Changed
	}
	if changed("backend") {
		cfg.Backend = strings.ToLower(strings.TrimSpace(app.Backend))
	}
	if changed("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(app.Theme))
	}
	if changed("title") {
		cfg.Title = app.Title
	}
	if changed("log-file") {
		cfg.Log.File = app.LogFile
	}
	if changed("log-level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(app.LogLevel))
	}
	if changed("allow-empty-edit") {
		cfg.Edit.AllowEmpty = app.AllowEmptyEdit
	}

	if err := cfg.Validate(); err != nil {
		return cfg, invalidConfigError{err: err}
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := resolveConfig(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}

	logger, closeLog, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = closeLog() }()
	logger.Info("starting",
		"backend", cfg.Backend,
		"theme", cfg.Theme,
		"config", cfg.Source,
		"allowEmptyEdit", cfg.Edit.AllowEmpty,
		"seeded", len(app.Tasks),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := tasks.OpenStore(ctx, cfg.Backend)
	if err != nil {
		return writeErr(cmd, err)
	}
	sess, err := tasks.NewSession(ctx, st,
		tasks.WithLogger(logger),
		tasks.WithAllowEmptyEdit(cfg.Edit.AllowEmpty),
	)
	if err != nil {
		_ = st.Close()
		return writeErr(cmd, err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Error("closing store", "err", err)
		}
	}()

	if err := sess.Seed(ctx, app.Tasks...); err != nil {
		return writeErr(cmd, err)
	}

	err = runProgram(ctx, sess, tui.Options{
		Title:       cfg.Title,
		Placeholder: cfg.Input.Placeholder,
		CharLimit:   cfg.Input.CharLimit,
		Theme:       cfg.Theme,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("tui exited", "err", err)
		return writeErr(cmd, err)
	}
	logger.Info("bye", "tasks", len(sess.Tasks()))
	return nil
}

func writeOut(cmd *cobra.Command, v any, pretty bool) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
