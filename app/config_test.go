package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learngl.toml")
	require.NoError(t, os.WriteFile(path, []byte(s), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.Equal(t, f32.Vec4{0.2, 0.3, 0.3, 1}, cfg.Clear())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
width = 1024
title = "wireframe"
shape = "quad"
background = [0.0, 0.0, 0.0, 1.0]
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height, "unset keys keep defaults")
	assert.Equal(t, "wireframe", cfg.Title)
	assert.Equal(t, ShapeQuad, cfg.Shape)
	assert.Equal(t, []float32{0, 0, 0, 1}, cfg.Background)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadKeepsDefaultBackground(t *testing.T) {
	cfg, err := Load(writeConfig(t, `height = 480`))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.2, 0.3, 0.3, 1}, cfg.Background)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, `fullscreen = true`))
	assert.ErrorContains(t, err, "decode config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "must be positive"},
		{"negative height", func(c *Config) { c.Height = -1 }, "must be positive"},
		{"old gl", func(c *Config) { c.GLMajor, c.GLMinor = 2, 1 }, "OpenGL 2.1 unsupported"},
		{"gl 3.2", func(c *Config) { c.GLMinor = 2 }, "OpenGL 3.2 unsupported"},
		{"shape", func(c *Config) { c.Shape = "circle" }, `unknown shape "circle"`},
		{"background", func(c *Config) { c.Background = []float32{1, 1, 1} }, "3 components"},
		{"watch nothing", func(c *Config) { c.Watch = true }, "watch needs"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, `log_level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	cfg := Default()
	cfg.GLMajor, cfg.GLMinor = 4, 1
	assert.NoError(t, cfg.Validate())
}

func TestSources(t *testing.T) {
	cfg := Default()
	vsrc, fsrc, err := cfg.Sources()
	require.NoError(t, err)
	assert.Equal(t, DefaultVertexShader, vsrc)
	assert.Equal(t, DefaultFragmentShader, fsrc)

	dir := t.TempDir()
	cfg.VertexShader = filepath.Join(dir, "a.vert")
	require.NoError(t, os.WriteFile(cfg.VertexShader, []byte("#version 330 core\nvoid main() {}"), 0o644))
	vsrc, fsrc, err = cfg.Sources()
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\nvoid main() {}", string(vsrc))
	assert.Equal(t, DefaultFragmentShader, fsrc)

	cfg.FragmentShader = filepath.Join(dir, "missing.frag")
	_, _, err = cfg.Sources()
	assert.ErrorContains(t, err, "read fragment shader")
}
