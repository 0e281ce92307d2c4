// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears FOLIO_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{
		"FOLIO_PROFILE", "FOLIO_TABLE", "FOLIO_CONFIRM_DELAY_MS", "FOLIO_THEME",
		"FOLIO_NO_COLOR", "NO_COLOR", "FOLIO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	os.Unsetenv("FOLIO_LOG_FILE")
	return home
}

// =============================================================================
// DEFAULT AND LOAD TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	isolate(t)
	cfg := Default()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "page", cfg.Terminal.Table)
	assert.Equal(t, 500*time.Millisecond, cfg.Terminal.ConfirmDelay())
	assert.True(t, cfg.Terminal.Welcome)
	assert.True(t, cfg.Profile.Watch)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "folio.log", filepath.Base(cfg.Log.File))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPath_FillsMissing(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[terminal]
table = "overlay"
welcome = false

[profile]
path = "/tmp/me.toml"
watch = false

[log]
file = ""
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "overlay", cfg.Terminal.Table)
	assert.False(t, cfg.Terminal.Welcome)
	assert.Equal(t, 500, cfg.Terminal.ConfirmDelayMs)
	assert.Equal(t, "portfolio", cfg.Terminal.Host)
	assert.Equal(t, "/tmp/me.toml", cfg.Profile.Path)
	assert.False(t, cfg.Profile.Watch)
	assert.Equal(t, "monokai", cfg.UI.CodeStyle)
	assert.Empty(t, cfg.Log.File, "explicit empty log file disables logging")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromPath_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[terminal\n"), 0600))
	_, err = LoadFromPath(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\ntheme = \"neon\"\n"), 0600))
	_, err = LoadFromPath(invalid)
	require.Error(t, err)
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "ui.theme", verrs[0].Field)
}

func TestLoad_ReadsConfigDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".folio")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntheme = \"light\"\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	cfg.Terminal.Table = "overlay"
	cfg.UI.WordWrap = 72
	require.NoError(t, Save(cfg))

	path := filepath.Join(home, ".folio", "config.toml")
	info, err := os.Stat(path)
	require.NoError(t, err)
	if info.Mode().Perm()&0077 != 0 {
		t.Errorf("config file permissions too open: %o", info.Mode().Perm())
	}

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"valid", func(*Config) {}, nil},
		{"table", func(c *Config) { c.Terminal.Table = "modal" }, []string{"terminal.table"}},
		{"delay", func(c *Config) { c.Terminal.ConfirmDelayMs = -1 }, []string{"terminal.confirm_delay_ms"}},
		{"host", func(c *Config) { c.Terminal.Host = "my host" }, []string{"terminal.host"}},
		{"wrap", func(c *Config) { c.UI.WordWrap = -5 }, []string{"ui.word_wrap"}},
		{"several", func(c *Config) {
			c.UI.Theme = "neon"
			c.Log.Level = "trace"
		}, []string{"ui.theme", "log.level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			var got []string
			for _, v := range verrs {
				got = append(got, v.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

// =============================================================================
// ENVIRONMENT TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_PROFILE", "/srv/profile.toml")
	t.Setenv("FOLIO_TABLE", "overlay")
	t.Setenv("FOLIO_CONFIRM_DELAY_MS", "50")
	t.Setenv("FOLIO_THEME", "dark")
	t.Setenv("FOLIO_NO_COLOR", "true")
	t.Setenv("FOLIO_LOG_FILE", "")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/srv/profile.toml", cfg.Profile.Path)
	assert.Equal(t, "overlay", cfg.Terminal.Table)
	assert.Equal(t, 50*time.Millisecond, cfg.Terminal.ConfirmDelay())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.NoColor)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvOverrides_NoColorConvention(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "yes")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.True(t, cfg.UI.NoColor)
}

func TestApplyEnvOverrides_BadDelayIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_CONFIRM_DELAY_MS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 500, cfg.Terminal.ConfirmDelayMs)
}

// =============================================================================
// GET/SET TESTS
// =============================================================================

func TestGetSet(t *testing.T) {
	isolate(t)
	cfg := Default()

	v, err := cfg.Get("terminal.table")
	require.NoError(t, err)
	assert.Equal(t, "page", v)

	require.NoError(t, cfg.Set("terminal.confirm_delay_ms", "250"))
	assert.Equal(t, 250, cfg.Terminal.ConfirmDelayMs)

	require.NoError(t, cfg.Set("ui.no_color", "true"))
	assert.True(t, cfg.UI.NoColor)

	require.NoError(t, cfg.Set("profile.watch", false))
	assert.False(t, cfg.Profile.Watch)

	_, err = cfg.Get("terminal.nope")
	assert.Error(t, err)
	_, err = cfg.Get("terminal")
	assert.Error(t, err)
	_, err = cfg.Get("")
	assert.Error(t, err)
	assert.Error(t, cfg.Set("terminal.confirm_delay_ms", "soon"))
	assert.Error(t, cfg.Set("terminal.confirm_delay_ms", []string{"x"}))
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "version")
	assert.Contains(t, keys, "terminal.confirm_delay_ms")
	assert.Contains(t, keys, "log.level")

	cfg := Default()
	for _, key := range keys {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestString(t *testing.T) {
	isolate(t)
	out := Default().String()
	assert.Contains(t, out, "[terminal]")
	assert.Contains(t, out, `table = "page"`)
}
