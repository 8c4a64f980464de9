package views

// ZoneKind identifies what a screen region does when clicked
type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneSurface
	ZoneItem
	ZonePrevious
	ZoneNext
	ZonePage
)

// Zone is a rectangular region of the rendered frame in terminal cells
type Zone struct {
	Kind  ZoneKind
	Value int // item index or page number
	X, Y  int
	W, H  int
}

// Contains reports whether the cell (x, y) falls inside the zone
func (z Zone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Frame is a rendered screen plus the clickable regions on it
type Frame struct {
	Content string
	Zones   []Zone
	// Surface covers the whole slider: track, buttons and pagination
	Surface Zone
}

// Hit returns the most specific zone under (x, y). Cells on the slider
// that are not a control resolve to the surface zone.
func (f Frame) Hit(x, y int) Zone {
	for _, z := range f.Zones {
		if z.Contains(x, y) {
			return z
		}
	}
	if f.Surface.Contains(x, y) {
		return f.Surface
	}
	return Zone{}
}

// OnSurface reports whether (x, y) is anywhere on the slider
func (f Frame) OnSurface(x, y int) bool {
	return f.Surface.Contains(x, y)
}

func offsetZones(zones []Zone, dx, dy int) []Zone {
	out := make([]Zone, len(zones))
	for i, z := range zones {
		z.X += dx
		z.Y += dy
		out[i] = z
	}
	return out
}
