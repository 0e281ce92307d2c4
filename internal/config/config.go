// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete folio configuration.
type Config struct {
	Version string `toml:"version"`

	Terminal TerminalConfig `toml:"terminal"`
	Profile  ProfileConfig  `toml:"profile"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// TerminalConfig configures the command terminal.
type TerminalConfig struct {
	// Host is shown after the handle in the prompt ("hong@portfolio:~$")
	Host string `toml:"host"`
	// Table selects the command table: "page" or "overlay"
	Table string `toml:"table"`
	// ConfirmDelayMs is the delay between "y" and the navigation it confirms
	ConfirmDelayMs int `toml:"confirm_delay_ms"`
	// Welcome shows the banner above the history
	Welcome bool `toml:"welcome"`
}

// ConfirmDelay returns ConfirmDelayMs as a duration.
func (t TerminalConfig) ConfirmDelay() time.Duration {
	return time.Duration(t.ConfirmDelayMs) * time.Millisecond
}

// ProfileConfig says where the portfolio profile comes from.
type ProfileConfig struct {
	// Path is a TOML profile file. Empty uses the built-in profile.
	Path string `toml:"path"`
	// Watch reloads the profile when the file changes
	Watch bool `toml:"watch"`
}

// UIConfig contains TUI settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme"`
	// NoColor disables all styling
	NoColor bool `toml:"no_color"`
	// CodeStyle is the chroma style used for code in responses
	CodeStyle string `toml:"code_style"`
	// WordWrap is the markdown wrap width (0 = window width)
	WordWrap int `toml:"word_wrap"`
}

// LogConfig controls the log file. The TUI owns the terminal, so logs are
// never written to stdout.
type LogConfig struct {
	// File is the log path. Empty disables logging.
	File string `toml:"file"`
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// CurrentVersion is the config file format version.
const CurrentVersion = "1"

// Default returns the built-in configuration.
func Default() *Config {
	logFile := ""
	if dir, err := ConfigDir(); err == nil {
		logFile = filepath.Join(dir, "folio.log")
	}

	return &Config{
		Version: CurrentVersion,
		Terminal: TerminalConfig{
			Host:           "portfolio",
			Table:          "page",
			ConfirmDelayMs: 500,
			Welcome:        true,
		},
		Profile: ProfileConfig{
			Watch: true,
		},
		UI: UIConfig{
			Theme:     "auto",
			CodeStyle: "monokai",
		},
		Log: LogConfig{
			File:  logFile,
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the folio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not determine home directory")
	}
	return filepath.Join(home, ".folio"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ProfilePath returns where "folio config init" writes the editable
// profile.
func ProfilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.folio/config.toml, or the defaults when it does not exist.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg and fills missing values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(err, "decode TOML")
	}
	fillDefaults(cfg, md)
	return nil
}

// fillDefaults fills in values the file did not set.
func fillDefaults(cfg *Config, md toml.MetaData) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.Terminal.Host == "" {
		cfg.Terminal.Host = defaults.Terminal.Host
	}
	if cfg.Terminal.Table == "" {
		cfg.Terminal.Table = defaults.Terminal.Table
	}
	if cfg.Terminal.ConfirmDelayMs == 0 {
		cfg.Terminal.ConfirmDelayMs = defaults.Terminal.ConfirmDelayMs
	}
	if !md.IsDefined("terminal", "welcome") {
		cfg.Terminal.Welcome = defaults.Terminal.Welcome
	}

	if !md.IsDefined("profile", "watch") {
		cfg.Profile.Watch = defaults.Profile.Watch
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.CodeStyle == "" {
		cfg.UI.CodeStyle = defaults.UI.CodeStyle
	}

	if !md.IsDefined("log", "file") {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# folio configuration file\n")
	buf.WriteString("# Generated by folio - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return errors.Wrap(err, "write config file")
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	validTables = map[string]bool{"page": true, "overlay": true}
	validThemes = map[string]bool{"auto": true, "dark": true, "light": true}
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !validTables[strings.ToLower(c.Terminal.Table)] {
		errs = append(errs, ValidationError{
			Field:   "terminal.table",
			Message: fmt.Sprintf("must be page or overlay, got %q", c.Terminal.Table),
		})
	}
	if c.Terminal.ConfirmDelayMs < 0 || c.Terminal.ConfirmDelayMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "terminal.confirm_delay_ms",
			Message: fmt.Sprintf("must be between 0 and 10000, got %d", c.Terminal.ConfirmDelayMs),
		})
	}
	if strings.ContainsAny(c.Terminal.Host, " \t@:") {
		errs = append(errs, ValidationError{
			Field:   "terminal.host",
			Message: fmt.Sprintf("must be a single word, got %q", c.Terminal.Host),
		})
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be auto, dark or light, got %q", c.UI.Theme),
		})
	}
	if c.UI.WordWrap < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.word_wrap",
			Message: "must not be negative",
		})
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - FOLIO_PROFILE: overrides profile.path
//   - FOLIO_TABLE: overrides terminal.table
//   - FOLIO_CONFIRM_DELAY_MS: overrides terminal.confirm_delay_ms
//   - FOLIO_THEME: overrides ui.theme
//   - FOLIO_NO_COLOR / NO_COLOR: disable styling
//   - FOLIO_LOG_FILE: overrides log.file
//   - FOLIO_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("FOLIO_PROFILE"); path != "" {
		c.Profile.Path = path
	}

	if table := os.Getenv("FOLIO_TABLE"); table != "" {
		c.Terminal.Table = table
	}

	if delay := os.Getenv("FOLIO_CONFIRM_DELAY_MS"); delay != "" {
		if ms, err := strconv.Atoi(delay); err == nil {
			c.Terminal.ConfirmDelayMs = ms
		}
	}

	if theme := os.Getenv("FOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if noColor := os.Getenv("FOLIO_NO_COLOR"); noColor != "" {
		c.UI.NoColor = noColor == "1" || strings.ToLower(noColor) == "true"
	}
	// https://no-color.org: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}

	if file, ok := os.LookupEnv("FOLIO_LOG_FILE"); ok {
		c.Log.File = file
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a value by its TOML key in dot notation ("ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set assigns a value by its TOML key in dot notation. String values are
// converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return errors.Newf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return reflect.Value{}, errors.Newf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, errors.Newf("%s is a section, not a value", key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, errors.Newf("field '%s' is not a section", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, errors.Newf("invalid key: %s", key)
}

// fieldByTag finds a struct field by its toml tag.
func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(t.Field(i).Tag.Get("toml"), name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid integer value %q", strVal)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(strVal == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.IsValid() && val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.IsValid() && val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return errors.Newf("cannot assign %T to %s", value, field.Type())
}

// Keys returns every configuration key in dot notation, sorted.
func Keys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		name := section.Tag.Get("toml")
		if section.Type.Kind() != reflect.Struct {
			keys = append(keys, name)
			continue
		}
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, name+"."+section.Type.Field(j).Tag.Get("toml"))
		}
	}
	sort.Strings(keys)
	return keys
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
