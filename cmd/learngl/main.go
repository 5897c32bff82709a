// Command learngl draws a triangle. Escape quits; 1 and 2 switch between
// filled and wireframe polygons.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"dasa.cc/learngl/app"
	"dasa.cc/learngl/glw/gogl"
	"dasa.cc/learngl/nui"
	"dasa.cc/learngl/surface"
)

var (
	flagConfig = flag.String("config", "", "TOML file to read settings from")
	flagWidth  = flag.Int("width", 0, "window width")
	flagHeight = flag.Int("height", 0, "window height")
	flagTitle  = flag.String("title", "", "window title")
	flagShape  = flag.String("shape", "", "geometry to draw: triangle, pair or quad")
	flagVert   = flag.String("vert", "", "vertex shader file replacing the built in source")
	flagFrag   = flag.String("frag", "", "fragment shader file replacing the built in source")
	flagWatch  = flag.Bool("watch", false, "rebuild the program when a shader file changes")
	flagStrict = flag.Bool("strict", false, "exit if shaders fail to compile or link")
	flagV      = flag.Bool("v", false, "log at debug level")
)

// config reads the config file, if any, then applies flags set on the
// command line over it.
func config() (app.Config, error) {
	cfg := app.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = app.Load(*flagConfig); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *flagWidth
		case "height":
			cfg.Height = *flagHeight
		case "title":
			cfg.Title = *flagTitle
		case "shape":
			cfg.Shape = *flagShape
		case "vert":
			cfg.VertexShader = *flagVert
		case "frag":
			cfg.FragmentShader = *flagFrag
		case "watch":
			cfg.Watch = *flagWatch
		case "strict":
			cfg.StrictShaders = *flagStrict
		case "v":
			if *flagV {
				cfg.LogLevel = "debug"
			}
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}
	lvl, _ := cfg.Level()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	win, err := surface.Open(surface.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		Major:  cfg.GLMajor,
		Minor:  cfg.GLMinor,
	})
	if err != nil {
		var ierr *nui.InitError
		if errors.As(err, &ierr) {
			log.Error("init", "op", ierr.Op, "err", ierr.Err)
		} else {
			log.Error("init", "err", err)
		}
		os.Exit(1)
	}
	log.Debug("context", "version", gogl.Version())

	a, err := app.New(cfg, win, gogl.Context{}, log)
	if err != nil {
		win.Destroy()
		log.Error("setup", "err", err)
		os.Exit(1)
	}
	a.Run()
	a.Close()
}
