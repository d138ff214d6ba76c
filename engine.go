package spark

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTickInterval is the period of the fixed simulation loop.
const DefaultTickInterval = 50 * time.Millisecond

// Hooks are the caller-supplied loop callbacks installed by Engine.Start.
// Loop runs once per simulation tick; Render runs once per frame with the
// canvas cleared beforehand. Either may be nil.
type Hooks struct {
	Loop   func()
	Render func(*Context)
}

// Engine owns a Canvas and drives two logical loops on top of the ebiten
// game loop: a fixed-interval simulation tick and a display-synchronized
// render pass. Engine implements ebiten.Game; hand it to Run (or to
// ebiten.RunGame directly) after calling Start.
//
// Everything here is single-threaded: ebiten invokes Update and Draw from
// one goroutine, and no engine state is touched from anywhere else.
type Engine struct {
	canvas *Canvas
	state  State
	prev   State
	hooks  Hooks

	tickInterval float64 // seconds
	tickAccum    float64

	pauseOnClick bool
	injected     int

	showFPS bool
	fps     *fpsOverlay

	// renders counts render-hook invocations; exposed for tests and the
	// debug overlay rather than for callers.
	renders uint64
}

// NewEngine creates an engine over the given canvas, in StateInit.
// Returns a ConfigError if canvas is nil.
func NewEngine(canvas *Canvas) (*Engine, error) {
	if canvas == nil {
		return nil, configErrorf("engine requires a canvas")
	}
	return &Engine{
		canvas:       canvas,
		state:        StateInit,
		prev:         StateInit,
		tickInterval: DefaultTickInterval.Seconds(),
		pauseOnClick: true,
	}, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// PrevState returns the state the engine was in before the most recent
// transition.
func (e *Engine) PrevState() State {
	return e.prev
}

// SetState transitions the engine to s, recording the prior state.
// Returns a ConfigError for values outside the known set. Use ParseState
// to transition by symbolic name.
func (e *Engine) SetState(s State) error {
	if !s.valid() {
		return configErrorf("unknown state value %d", s)
	}
	e.transition(s)
	return nil
}

func (e *Engine) transition(s State) {
	e.prev = e.state
	e.state = s
}

// SetTickInterval changes the simulation tick period. Returns a
// ConfigError if d is not positive.
func (e *Engine) SetTickInterval(d time.Duration) error {
	if d <= 0 {
		return configErrorf("tick interval must be positive, got %v", d)
	}
	e.tickInterval = d.Seconds()
	return nil
}

// Start installs the loop hooks and moves the engine from StateInit to
// StatePlay. A no-op in any other state: Start is one-shot and the engine
// never returns to StateInit. One render is performed immediately so the
// first frame blitted to the screen is never blank.
func (e *Engine) Start(hooks Hooks) {
	if e.state != StateInit {
		return
	}
	e.hooks = hooks
	e.transition(StatePlay)
	e.renderOnce()
}

// TogglePause flips between StatePlay and StatePause. Unpausing performs
// one immediate render so the held frame is refreshed in the same call
// rather than a frame later. A no-op in every other state.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePause:
		e.transition(StatePlay)
		e.renderOnce()
	case StatePlay:
		e.transition(StatePause)
	}
}

// Stop moves the engine to StateEnd. The next Update returns
// ebiten.Termination, which makes Run exit cleanly.
func (e *Engine) Stop() {
	e.transition(StateEnd)
}

// advancing reports whether the two loops should run. Both loops use this
// same predicate so they suspend and resume together: true in StatePlay
// and StateStart, false before Start and while paused or ended.
func (e *Engine) advancing() bool {
	return e.state == StatePlay || e.state == StateStart
}

// Update advances the simulation side: it drains pending clicks, then
// fires the Loop hook once per elapsed tick interval. While paused the
// accumulator is frozen, so no tick backlog builds up and resuming does
// not burst-fire missed ticks. Part of the ebiten.Game interface.
func (e *Engine) Update() error {
	if e.state == StateEnd {
		return ebiten.Termination
	}

	e.processInput()

	if !e.advancing() || e.hooks.Loop == nil {
		return nil
	}

	e.tickAccum += 1.0 / float64(ebiten.TPS())
	for e.tickAccum >= e.tickInterval {
		e.tickAccum -= e.tickInterval
		e.hooks.Loop()
	}
	return nil
}

// Draw renders one frame: while the loops are advancing the canvas is
// cleared, the Render hook runs, and the result is blitted to the screen.
// While paused (or before Start) the canvas is blitted as-is — no clear,
// no hook — which holds the last rendered frame on screen. Part of the
// ebiten.Game interface.
func (e *Engine) Draw(screen *ebiten.Image) {
	if e.advancing() {
		e.renderOnce()
	}
	screen.DrawImage(e.canvas.image, nil)
	if e.showFPS {
		e.fps.draw(screen)
	}
}

// renderOnce clears the canvas and invokes the Render hook.
func (e *Engine) renderOnce() {
	e.canvas.image.Clear()
	if e.hooks.Render != nil {
		e.hooks.Render(e.canvas.ctx)
	}
	e.renders++
}

// Layout reports the logical screen size: always the canvas size.
// Part of the ebiten.Game interface.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.canvas.width, e.canvas.height
}
