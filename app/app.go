// Package app draws a fixed shape with a fixed shader program into a single
// window until Escape is pressed or the window is closed.
//
// Keys 1 and 2 switch between filled and wireframe polygons.
package app

import (
	"log/slog"
	"math"

	"dasa.cc/learngl/glw"
	"dasa.cc/learngl/nui"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// App owns a window, its GL context and every GL object drawn into it.
type App struct {
	cfg Config
	log *slog.Logger
	win nui.Window

	bg     f32.Vec4
	prg    glw.Program
	color  glw.U4f
	arrays []*glw.VertexArray
	mode   nui.PolygonMode
	watch  *watcher

	released bool
}

// New builds the shader program and uploads geometry into the current
// context of win. The viewport follows the framebuffer size of win.
//
// Shader failures are logged and drawing continues with the unusable
// program, unless cfg.StrictShaders is set. On error, everything New
// created is released; win remains owned by the caller.
func New(cfg Config, win nui.Window, ctx glw.Context, log *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if log == nil {
		log = slog.Default()
	}

	glw.With(ctx)
	glw.SetLogger(log.With("pkg", "glw"))
	glw.MaxInfoLog = cfg.MaxInfoLog

	a := &App{cfg: cfg, log: log, win: win, bg: cfg.Clear(), mode: nui.ModeFill}
	nui.FitViewport(win, nui.ViewportFunc(glw.Viewport))

	vsrc, fsrc, err := cfg.Sources()
	if err != nil {
		return nil, err
	}
	if err := a.prg.Build(vsrc, fsrc); err != nil {
		if cfg.StrictShaders {
			a.prg.Delete()
			return nil, errors.Wrap(err, "build shader program")
		}
		log.Warn("continuing with unusable shader program")
	}
	a.color = glw.U4f(a.prg.Uniform(ColorUniform))

	switch cfg.Shape {
	case ShapeTriangle:
		a.arrays = append(a.arrays, glw.UploadTriangle(Triangle))
	case ShapePair:
		for _, t := range Pair {
			a.arrays = append(a.arrays, glw.UploadTriangle(t))
		}
	case ShapeQuad:
		a.arrays = append(a.arrays, glw.UploadQuad(Quad))
	}

	if cfg.Watch {
		if a.watch, err = newWatcher(log, cfg.VertexShader, cfg.FragmentShader); err != nil {
			a.release()
			return nil, err
		}
	}

	log.Info("ready", "shape", cfg.Shape, "arrays", len(a.arrays), "program", a.prg.Program)
	return a, nil
}

// Run draws frames until the window should close, then releases every GL
// object. Run returns the number of frames drawn.
func (a *App) Run() int {
	n := nui.Run(a.win, a)
	a.log.Info("closing", "frames", n)
	a.release()
	return n
}

// Close releases GL objects if Run has not and destroys the window.
func (a *App) Close() {
	a.release()
	a.win.Destroy()
}

// Input applies a polygon mode change.
func (a *App) Input(eff nui.Effect) {
	if eff.Mode == nui.ModeKeep {
		return
	}
	switch eff.Mode {
	case nui.ModeFill:
		glw.PolygonMode(glw.FILL)
	case nui.ModeLine:
		glw.PolygonMode(glw.LINE)
	}
	if eff.Mode != a.mode {
		a.log.Debug("polygon mode", "mode", eff.Mode)
		a.mode = eff.Mode
	}
}

// Mode returns the polygon mode last applied.
func (a *App) Mode() nui.PolygonMode { return a.mode }

// Draw clears to the background and draws every vertex array.
func (a *App) Draw(t float64) {
	if a.watch != nil && a.watch.changed() {
		a.reload()
	}

	glw.ClearColor(a.bg)
	a.prg.Use()
	c := Pulse(t)
	a.color.Set(c[0], c[1], c[2], c[3])
	for _, va := range a.arrays {
		va.Draw(glw.TRIANGLES)
	}
	if len(a.arrays) > 0 {
		a.arrays[0].Unbind()
	}
}

// Pulse returns green with intensity following sin(t) between 0 and 1.
func Pulse(t float64) f32.Vec4 {
	return f32.Vec4{0, float32(math.Sin(t))/2 + 0.5, 0, 1}
}

// reload rebuilds the program from shader files. A program that fails to
// build is discarded and the current one kept.
func (a *App) reload() {
	vsrc, fsrc, err := a.cfg.Sources()
	if err != nil {
		a.log.Warn("reload", "err", err)
		return
	}
	var prg glw.Program
	if err := prg.Build(vsrc, fsrc); err != nil {
		prg.Delete()
		a.log.Warn("reload failed; keeping current program")
		return
	}
	a.prg.Delete()
	a.prg = prg
	a.color = glw.U4f(prg.Uniform(ColorUniform))
	a.log.Info("reloaded", "program", prg.Program)
}

// release deletes every GL object exactly once.
func (a *App) release() {
	if a.released {
		return
	}
	a.released = true

	for _, va := range a.arrays {
		va.Delete()
	}
	a.arrays = nil
	a.prg.Delete()
	if a.watch != nil {
		a.watch.Close()
	}
	a.log.Debug("released")
}
