package spark

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig controls the window Run creates.
type RunConfig struct {
	// Title is the window title. Defaults to "spark".
	Title string
	// Width and Height are the window size in pixels. When zero, the
	// canvas size is used.
	Width, Height int
	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives the engine until it stops or the window is
// closed. Call Engine.Start first; Run does not install hooks.
func Run(e *Engine, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = "spark"
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = e.canvas.width, e.canvas.height
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)

	e.showFPS = cfg.ShowFPS
	if cfg.ShowFPS && e.fps == nil {
		e.fps = newFPSOverlay()
	}

	return ebiten.RunGame(e)
}
