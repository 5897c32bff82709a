// Package nui aims to be unremarkable in aiding windowing.
//
// It holds what a single window render loop needs to know about the window
// system, independent of GLFW: keys, the frame loop and its input effects.
package nui

import "fmt"

// Key is a keyboard key; values match GLFW key tokens.
type Key int

const (
	Key1      Key = 49
	Key2      Key = 50
	KeyEscape Key = 256
)

// Action is the last reported state of a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Window is the one window and GL context a program draws into.
type Window interface {
	// Key returns the last state reported for k.
	Key(k Key) Action

	ShouldClose() bool
	SetShouldClose(bool)

	// FramebufferSize returns the framebuffer size in pixels.
	FramebufferSize() (width, height int)

	// SetFramebufferSizeCallback replaces the func called on each framebuffer resize.
	SetFramebufferSizeCallback(func(width, height int))

	// Time returns seconds since the window system was initialized.
	Time() float64

	SwapBuffers()

	// PollEvents processes pending events and returns immediately.
	PollEvents()

	// Destroy releases the window and terminates the window system.
	Destroy()
}

// InitError reports a failure to bring up the window system, window or GL context.
type InitError struct {
	// Op is the step that failed, such as "glfw.Init".
	Op  string
	Err error
}

func (err *InitError) Error() string { return fmt.Sprintf("nui: %s: %v", err.Op, err.Err) }
func (err *InitError) Unwrap() error { return err.Err }

// Viewporter sets the rendering viewport.
type Viewporter interface {
	Viewport(width, height int)
}

// ViewportFunc is a func that implements Viewporter.
type ViewportFunc func(width, height int)

func (fn ViewportFunc) Viewport(width, height int) { fn(width, height) }

// FitViewport sets vp to the framebuffer size of win now and on every resize.
func FitViewport(win Window, vp Viewporter) {
	vp.Viewport(win.FramebufferSize())
	win.SetFramebufferSizeCallback(vp.Viewport)
}
