// Package nuitest provides a scripted nui.Window.
package nuitest

import "dasa.cc/learngl/nui"

// Window is a nui.Window whose keys and lifetime are set by tests.
type Window struct {
	Width, Height int

	// Keys holds the state reported for each key.
	Keys map[nui.Key]nui.Action

	// CloseAfter, if positive, requests close once PollEvents has been
	// called that many times.
	CloseAfter int

	// OnPoll, if not nil, is called from each PollEvents.
	OnPoll func(polls int)

	Swaps, Polls int
	Destroyed    bool

	shouldClose bool
	resize      func(width, height int)
	now         float64
}

// New returns a Window of width and height.
func New(width, height int) *Window {
	return &Window{Width: width, Height: height, Keys: make(map[nui.Key]nui.Action)}
}

var _ nui.Window = (*Window)(nil)

// Press marks keys as pressed.
func (w *Window) Press(keys ...nui.Key) {
	for _, k := range keys {
		w.Keys[k] = nui.Press
	}
}

// Release marks keys as released.
func (w *Window) Release(keys ...nui.Key) {
	for _, k := range keys {
		w.Keys[k] = nui.Release
	}
}

// Resize changes the framebuffer size and reports it like the window system would.
func (w *Window) Resize(width, height int) {
	w.Width, w.Height = width, height
	if w.resize != nil {
		w.resize(width, height)
	}
}

func (w *Window) Key(k nui.Key) nui.Action { return w.Keys[k] }
func (w *Window) ShouldClose() bool        { return w.shouldClose }
func (w *Window) SetShouldClose(b bool)    { w.shouldClose = b }

func (w *Window) FramebufferSize() (int, int) { return w.Width, w.Height }

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) { w.resize = fn }

// Time advances a sixtieth of a second per swap.
func (w *Window) Time() float64 { return w.now }

func (w *Window) SwapBuffers() {
	w.Swaps++
	w.now += 1.0 / 60
}

func (w *Window) PollEvents() {
	w.Polls++
	if w.OnPoll != nil {
		w.OnPoll(w.Polls)
	}
	if w.CloseAfter > 0 && w.Polls >= w.CloseAfter {
		w.shouldClose = true
	}
}

func (w *Window) Destroy() { w.Destroyed = true }
