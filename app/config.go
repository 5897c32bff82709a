package app

import (
	"bytes"
	"log/slog"
	"os"

	"dasa.cc/learngl/glw"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// Shapes that Config.Shape may name.
const (
	ShapeTriangle = "triangle"
	ShapePair     = "pair"
	ShapeQuad     = "quad"
)

// Config is everything about a run that is not fixed in code.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	GLMajor int    `toml:"gl_major"`
	GLMinor int    `toml:"gl_minor"`

	// Shape is the geometry drawn: triangle, pair or quad.
	Shape string `toml:"shape"`

	// Background is the RGBA clear color.
	Background []float32 `toml:"background"`

	// VertexShader and FragmentShader name files replacing the built in
	// shader sources when not empty.
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`

	// Watch rebuilds the program when a shader file changes.
	Watch bool `toml:"watch"`

	// StrictShaders makes a shader compile or link failure fatal.
	StrictShaders bool `toml:"strict_shaders"`

	// MaxInfoLog caps diagnostic length; zero or less keeps it all.
	MaxInfoLog int `toml:"max_info_log"`

	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "Learn OpenGL",
		GLMajor:    3,
		GLMinor:    3,
		Shape:      ShapeTriangle,
		Background: []float32{0.2, 0.3, 0.3, 1},
		MaxInfoLog: 512,
		LogLevel:   "info",
	}
}

// Load reads the TOML file at path over Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	bg := cfg.Background
	cfg.Background = nil
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), errors.Wrapf(err, "decode config %s", path)
	}
	if cfg.Background == nil {
		cfg.Background = bg
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (cfg Config) Validate() error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return errors.Errorf("window size %vx%v must be positive", cfg.Width, cfg.Height)
	case cfg.GLMajor < 3 || (cfg.GLMajor == 3 && cfg.GLMinor < 3):
		return errors.Errorf("OpenGL %v.%v unsupported; need 3.3 or later", cfg.GLMajor, cfg.GLMinor)
	case cfg.Shape != ShapeTriangle && cfg.Shape != ShapePair && cfg.Shape != ShapeQuad:
		return errors.Errorf("unknown shape %q", cfg.Shape)
	case len(cfg.Background) != 4:
		return errors.Errorf("background has %v components, want 4", len(cfg.Background))
	case cfg.Watch && cfg.VertexShader == "" && cfg.FragmentShader == "":
		return errors.New("watch needs vertex_shader or fragment_shader")
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (cfg Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return lvl, errors.Wrapf(err, "log_level %q", cfg.LogLevel)
	}
	return lvl, nil
}

// Clear returns Background as a color.
func (cfg Config) Clear() f32.Vec4 {
	var c f32.Vec4
	copy(c[:], cfg.Background)
	return c
}

// Sources returns shader sources, reading files named by cfg in place of
// the built in defaults.
func (cfg Config) Sources() (glw.VertSrc, glw.FragSrc, error) {
	vsrc, fsrc := DefaultVertexShader, DefaultFragmentShader
	if cfg.VertexShader != "" {
		b, err := os.ReadFile(cfg.VertexShader)
		if err != nil {
			return vsrc, fsrc, errors.Wrap(err, "read vertex shader")
		}
		vsrc = glw.VertSrc(b)
	}
	if cfg.FragmentShader != "" {
		b, err := os.ReadFile(cfg.FragmentShader)
		if err != nil {
			return vsrc, fsrc, errors.Wrap(err, "read fragment shader")
		}
		fsrc = glw.FragSrc(b)
	}
	return vsrc, fsrc, nil
}
