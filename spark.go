package spark

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is pure white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is pure black, the default particle color.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts to the 8-bit color type ebiten drawing functions take.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, velocities, and offsets
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the emitter (vertical velocity spread) and the random helpers.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max]. Bounds may be given in
// either order.
func (r Range) Random() float64 {
	return RandFloat(r.Min, r.Max)
}

// State is the engine lifecycle state. Each Engine carries its own current
// and previous state; there is no shared state table across instances.
type State uint8

const (
	StateInit  State = iota // constructed, loops not yet installed
	StateStart              // legal SetState target; loops advance as in play
	StatePlay               // both loops advancing
	StatePause              // both loops frozen, last frame held on screen
	StateEnd                // terminal; Run exits on the next update
)

// stateNames doubles as the String table and the ParseState lookup.
var stateNames = [...]string{
	StateInit:  "init",
	StateStart: "start",
	StatePlay:  "play",
	StatePause: "pause",
	StateEnd:   "end",
}

// String returns the lowercase symbolic name of the state.
func (s State) String() string {
	if !s.valid() {
		return "unknown"
	}
	return stateNames[s]
}

func (s State) valid() bool {
	return s <= StateEnd
}

// ParseState resolves a symbolic state name ("init", "start", "play",
// "pause", "end") to its State value. Returns a ConfigError for names that
// match no known state.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return 0, configErrorf("unknown state name %q", name)
}
