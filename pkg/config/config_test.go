package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("AGENDA_CONFIG_PATH", "")
	return dir
}

func TestDefault(t *testing.T) {
	isolate(t)
	cfg := Default()

	assert.Equal(t, Keys{Quit: "q", Next: "n", Previous: "p"}, cfg.Keys)
	assert.Equal(t, 3, cfg.UI.Months)
	assert.Equal(t, 2*time.Second, cfg.UI.Refresh)
	assert.False(t, cfg.Agenda.SkipBlank)
	assert.Equal(t, "#3e8fb0", cfg.Colors.CalendarTitle)
	assert.Equal(t, "#975c0a", cfg.Colors.CalendarDaySelected)
	assert.Equal(t, filepath.Base(cfg.Dir), AppName)
	assert.Equal(t, cfg.Dir, cfg.BasePath())
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	isolate(t)
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(New(), filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	data := `
dir: ` + filepath.Join(dir, "entries") + `
keys:
  quit: x
ui:
  months: 2
  refresh: 500ms
agenda:
  skip_blank: true
colors:
  agenda_title: "#ffffff"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "entries"), cfg.Dir)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "n", cfg.Keys.Next)
	assert.Equal(t, 2, cfg.UI.Months)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.Refresh)
	assert.True(t, cfg.Agenda.SkipBlank)
	assert.Equal(t, "#ffffff", cfg.Colors.AgendaTitle)
	assert.Equal(t, "#9ccfd8", cfg.Colors.AgendaBox)
}

func TestLoadSearchesConfigPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: debug\n"), 0o644))
	t.Setenv("AGENDA_CONFIG_PATH", dir)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("AGENDA_UI_MONTHS", "6")
	t.Setenv("AGENDA_NO_COLOR", "true")

	cfg, err := FromViper(New())
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.UI.Months)
	assert.True(t, cfg.NoColor)
}

func TestHomeExpansion(t *testing.T) {
	isolate(t)
	v := New()
	v.Set("dir", "~/agenda-files")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Dir, "~")
	assert.True(t, filepath.IsAbs(cfg.Dir))
}

func TestValidate(t *testing.T) {
	isolate(t)
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"multi-character key", func(c *Config) { c.Keys.Quit = "qq" }},
		{"empty key", func(c *Config) { c.Keys.Next = "" }},
		{"duplicate keys", func(c *Config) { c.Keys.Next = "q" }},
		{"zero months", func(c *Config) { c.UI.Months = 0 }},
		{"too many months", func(c *Config) { c.UI.Months = 13 }},
		{"zero refresh", func(c *Config) { c.UI.Refresh = 0 }},
		{"bad colour", func(c *Config) { c.Colors.AgendaBox = "blue" }},
		{"empty dir", func(c *Config) { c.Dir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDefaultLogFileHonoursStateHome(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "state", AppName, "agenda.log"), DefaultLogFile())
}
