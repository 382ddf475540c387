package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, float64(DefaultResolution), cfg.Resolution)
	assert.Equal(t, float64(DefaultHoneySide), cfg.HoneySide)
	assert.Equal(t, float64(DefaultPower), cfg.Power)
	assert.Equal(t, DefaultProjection, cfg.Projection)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Zero(t, cfg.Radius)
	assert.False(t, cfg.Quiet)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GGMAP_WIDTH", "320")
	t.Setenv("GGMAP_RESOLUTION", "2.5")
	t.Setenv("GGMAP_QUIET", "true")
	t.Setenv("GGMAP_PROJECTION", "lnglat")
	t.Setenv("GGMAP_HEIGHT", "not-a-number")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 2.5, cfg.Resolution)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "lnglat", cfg.Projection)
	assert.Equal(t, DefaultHeight, cfg.Height, "invalid values fall back to the default")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggmap.env")
	content := "GGMAP_ZOOM=7\nGGMAP_GRADIENT=\"#000000,#ffffff\"\nGGMAP_POWER=2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv does not override variables that are already set.
	t.Setenv("GGMAP_POWER", "4")
	for _, key := range []string{"GGMAP_ZOOM", "GGMAP_GRADIENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("GGMAP_ZOOM")
		_ = os.Unsetenv("GGMAP_GRADIENT")
	})

	cfg := Load(path)

	assert.Equal(t, 7.0, cfg.Zoom)
	assert.Equal(t, "#000000,#ffffff", cfg.Gradient)
	assert.Equal(t, 4.0, cfg.Power)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return Load(filepath.Join(t.TempDir(), "missing.env"))
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero resolution", func(c *Config) { c.Resolution = 0 }},
		{"zero side", func(c *Config) { c.HoneySide = 0 }},
		{"zero power", func(c *Config) { c.Power = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
