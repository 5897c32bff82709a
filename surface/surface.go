// Package surface opens a GLFW window with a current OpenGL core context.
package surface

import (
	"runtime"

	"dasa.cc/learngl/glw/gogl"
	"dasa.cc/learngl/nui"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW event handling must run on the main thread.
func init() { runtime.LockOSThread() }

// Options describe the window to open.
type Options struct {
	Width, Height int
	Title         string

	// Major and Minor select the OpenGL context version.
	Major, Minor int
}

// Window is a nui.Window backed by a GLFW window.
type Window struct {
	*glfw.Window
}

var _ nui.Window = (*Window)(nil)

// Open initializes GLFW, creates a window and makes its context current,
// then loads GL function pointers. On failure, anything already created is
// torn down and the error is a *nui.InitError.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &nui.InitError{Op: "glfw.Init", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &nui.InitError{Op: "glfw.CreateWindow", Err: err}
	}
	w.MakeContextCurrent()

	if err := gogl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, &nui.InitError{Op: "gl.Init", Err: err}
	}

	return &Window{Window: w}, nil
}

func (w *Window) Key(k nui.Key) nui.Action { return nui.Action(w.Window.GetKey(glfw.Key(k))) }

func (w *Window) FramebufferSize() (int, int) { return w.Window.GetFramebufferSize() }

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.Window.SetFramebufferSizeCallback(nil)
		return
	}
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}

func (w *Window) Time() float64 { return glfw.GetTime() }

func (w *Window) PollEvents() { glfw.PollEvents() }

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
