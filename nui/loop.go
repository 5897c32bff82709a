package nui

// State of a frame loop.
type State int

const (
	Running State = iota
	Closing       // terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "State(?)"
	}
}

// Frame is drawn once per loop iteration.
type Frame interface {
	// Input applies eff; close requests are handled by the loop.
	Input(eff Effect)

	// Draw renders a frame at t seconds.
	Draw(t float64)
}

// Loop drives a Frame until its window closes.
type Loop struct {
	Window Window
	Frame  Frame

	state  State
	frames int
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames drawn.
func (l *Loop) Frames() int { return l.frames }

// Step runs one iteration: poll keys, apply their effects and, unless
// close was requested, draw, swap buffers and poll window events.
// Step returns the resulting state; once Closing, Step does nothing.
func (l *Loop) Step() State {
	if l.state == Closing {
		return l.state
	}

	eff := Poll(l.Window)
	if eff.Close {
		l.Window.SetShouldClose(true)
	}
	l.Frame.Input(eff)

	if l.Window.ShouldClose() {
		l.state = Closing
		return l.state
	}

	l.Frame.Draw(l.Window.Time())
	l.frames++
	l.Window.SwapBuffers()
	l.Window.PollEvents()
	return l.state
}

// Run steps until Closing and returns the number of frames drawn.
func (l *Loop) Run() int {
	for l.Step() == Running {
	}
	return l.frames
}

// Run is a helper that runs a new Loop of win and frame.
func Run(win Window, frame Frame) int {
	l := &Loop{Window: win, Frame: frame}
	return l.Run()
}
