package spark

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// The engine's entire external control surface is a single click: any
// left-button press anywhere in the window toggles pause. There is no
// keyboard handling and no hit testing — the whole surface is the target.

// SetPauseOnClick enables or disables the click-to-pause handler.
// Enabled by default.
func (e *Engine) SetPauseOnClick(enabled bool) {
	e.pauseOnClick = enabled
}

// InjectClick queues one synthetic click, drained at the start of the next
// Update exactly like a real press. Lets tests and scripted scenarios
// exercise the pause toggle without a window.
func (e *Engine) InjectClick() {
	e.injected++
}

// processInput drains injected clicks and polls the real mouse, toggling
// pause once per click. Called from Update before the tick accumulator runs
// so an unpausing click takes effect in the same update.
func (e *Engine) processInput() {
	clicks := e.injected
	e.injected = 0

	if e.pauseOnClick && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicks++
	}

	for ; clicks > 0; clicks-- {
		e.TogglePause()
	}
}
