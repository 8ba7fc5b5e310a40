// Package config resolves tasklist settings.
//
// Precedence (lowest first): defaults, TOML file, environment, CLI flags.
// Flags are applied by the cli package since only it knows which were set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tasklist/internal/tasks"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultTitle       = "Simple ToDo App"
	DefaultPlaceholder = "Enter task"
	DefaultCharLimit   = 200

	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Environment variable names.
const (
	EnvConfig         = "TASKLIST_CONFIG"
	EnvBackend        = "TASKLIST_BACKEND"
	EnvTheme          = "TASKLIST_THEME"
	EnvTitle          = "TASKLIST_TITLE"
	EnvLogFile        = "TASKLIST_LOG_FILE"
	EnvLogLevel       = "TASKLIST_LOG_LEVEL"
	EnvAllowEmptyEdit = "TASKLIST_ALLOW_EMPTY_EDIT"
)

type Config struct {
	Title   string `toml:"title" json:"title"`
	Backend string `toml:"backend" json:"backend"`
	Theme   string `toml:"theme" json:"theme"`

	Log   LogConfig   `toml:"log" json:"log"`
	Input InputConfig `toml:"input" json:"input"`
	Edit  EditConfig  `toml:"edit" json:"edit"`

	// Source is the config file that was read, if any.
	Source string `toml:"-" json:"source,omitempty"`
}

type LogConfig struct {
	File  string `toml:"file" json:"file"`
	Level string `toml:"level" json:"level"`
}

type InputConfig struct {
	Placeholder string `toml:"placeholder" json:"placeholder"`
	CharLimit   int    `toml:"char_limit" json:"charLimit"`
}

type EditConfig struct {
	// AllowEmpty lets a saved edit blank out a task. Adding a blank task is
	// never allowed.
	AllowEmpty bool `toml:"allow_empty" json:"allowEmpty"`
}

func Default() Config {
	return Config{
		Title:   DefaultTitle,
		Backend: tasks.BackendMemory,
		Theme:   ThemeAuto,
		Log:     LogConfig{Level: "info"},
		Input: InputConfig{
			Placeholder: DefaultPlaceholder,
			CharLimit:   DefaultCharLimit,
		},
		Edit: EditConfig{AllowEmpty: true},
	}
}

// Load returns defaults overlaid with the config file and the environment.
// path wins over TASKLIST_CONFIG, which wins over the user config file. An
// explicit path that does not exist is an error; a missing user file is not.
func Load(path string) (Config, error) {
	loadDotEnv()

	cfg := Default()

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	file := explicit
	if file == "" {
		if p := UserConfigPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				file = p
			}
		}
	}
	if file != "" {
		if err := loadFile(&cfg, file); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", file, err)
		}
		cfg.Source = file
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadDotEnv reads ./.env if present. Existing variables are not replaced.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	_ = godotenv.Load()
}

// ApplyEnv overrides fields from TASKLIST_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvTitle)); v != "" {
		c.Title = v
	}
	if v := strings.TrimSpace(getenv(EnvBackend)); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvTheme)); v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvAllowEmptyEdit)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAllowEmptyEdit, err)
		}
		c.Edit.AllowEmpty = b
	}
	return nil
}

// Validate rejects unknown enum values and nonsensical limits.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case tasks.BackendMemory, tasks.BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("backend must be %s or %s, got %q", tasks.BackendMemory, tasks.BackendSQLite, c.Backend))
	}
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		errs = append(errs, fmt.Errorf("theme must be auto, light or dark, got %q", c.Theme))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.Input.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("input.char_limit must be >= 0, got %d", c.Input.CharLimit))
	}
	return errors.Join(errs...)
}

// UserConfigPath is $XDG_CONFIG_HOME/tasklist/config.toml (or the OS
// equivalent). Empty when no config dir can be determined.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "tasklist", "config.toml")
}
