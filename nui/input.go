package nui

// PolygonMode is a requested rasterization mode.
type PolygonMode int

const (
	ModeKeep PolygonMode = iota // leave as is
	ModeFill
	ModeLine
)

func (m PolygonMode) String() string {
	switch m {
	case ModeKeep:
		return "keep"
	case ModeFill:
		return "fill"
	case ModeLine:
		return "line"
	default:
		return "PolygonMode(?)"
	}
}

// Effect is what the keys held during one frame ask for.
type Effect struct {
	Close bool
	Mode  PolygonMode
}

// Poll reads key state from win. Escape requests close, 1 requests
// fill and 2 requests line. Keys are checked in that order and a later
// mode replaces an earlier one.
func Poll(win Window) Effect {
	var eff Effect
	if win.Key(KeyEscape) == Press {
		eff.Close = true
	}
	if win.Key(Key1) == Press {
		eff.Mode = ModeFill
	}
	if win.Key(Key2) == Press {
		eff.Mode = ModeLine
	}
	return eff
}
